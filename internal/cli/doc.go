// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and positional node inputs into the application's
// configuration and a single node invocation request.
package cli
