// Package memory holds in-process repositories backing dev mode and tests.
// All repos copy values in and out, sort listings by created_at asc for
// stable output, and are safe for concurrent use.
package memory

import "errors"

var ErrNotFound = errors.New("not found")
