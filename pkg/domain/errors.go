package domain

import "errors"

// ErrUnknownMove is returned when a token does not name one of the four crossings.
var ErrUnknownMove = errors.New("unknown move")

// ErrNodeNotFound is returned when a node ID is not part of the search tree.
var ErrNodeNotFound = errors.New("node not found")
