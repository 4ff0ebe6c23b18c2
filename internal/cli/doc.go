// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the OptiPNG option grammar into a config.Options record and an
// ordered list of file operands.
//
// Option names are matched by case-insensitive prefix against a fixed
// table, with one or two leading dashes. A few options accept their value
// glued to the name (`-o3`, `-f0-5`, `-zc9`); all others read it from the
// next argument. A bare `--` ends option recognition.
package cli
