/*
Package ports defines the interfaces adapters depend on.

These interfaces decouple the HTTP and MCP adapters from the concrete solver,
so handlers can be tested against a stub that returns a prepared Result.

# Key Interfaces

  - Solver: produces the finished breadth-first search tree.
*/
package ports
