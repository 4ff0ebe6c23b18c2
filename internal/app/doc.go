// Package app contains the core application logic. It turns a parsed option
// record into an App, applies an optional preset file, and dispatches every
// file operand to an optimization engine, decoupled from the command-line
// entrypoint.
package app
