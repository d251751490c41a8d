/*
Package domain contains the core model of the river-crossing puzzle.

It defines the occupants and banks, the immutable State with its transition
function and safety predicates, and the Node that forms the breadth-first
search tree. This package is kept pure and free of I/O so that every adapter
(console, HTTP, MCP) can share the same model.

# Key Entities

  - State: which occupants stand on which bank, and where the farmer is.
  - Move: one of the four crossings (F, FW, FS, FC).
  - Node: a tree vertex with a parent back-pointer, ordered children, depth and move label.
  - Result: the finished tree, the solution nodes, and run statistics.
  - LifecycleHooks: callbacks fired while the tree is being built.
*/
package domain
