// Package registry provides the central "glue" between node manifests and the
// Go functions that implement them.
//
// The Registry stores two mappings: handler names (e.g.
// "OnRunValidateIgnoreList") to compiled Go handlers, and node IDs to their
// parsed manifest definitions. At startup it is populated and then validated
// so that the Go structs and the declared ports are in sync; at run time it is
// the boundary the host calls through (Invoke).
package registry
