// Package idlist decodes, encodes and edits the identifier lists that the
// batch-ignore nodes pass around as text.
//
// An identifier list travels between the host and the nodes as a JSON array
// of strings. Decode is the only way in: it classifies every failure into one
// of three kinds (see Kind) so that callers can map each kind onto a safe
// fallback instead of inspecting parser internals. Canonical and Pretty are
// the ways out; both produce text that Decode accepts again.
//
// Everything in this package is a pure function over its arguments and is
// safe to call from any number of goroutines.
package idlist
