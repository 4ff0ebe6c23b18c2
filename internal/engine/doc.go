// Package engine is the optimization layer of the application. It defines
// the Engine interface the application dispatches every file operand to,
// resolves where each result is written, and ships PNGEngine, the default
// implementation.
//
// PNGEngine never changes pixels. It drops metadata chunks when asked to
// strip them and re-encodes the image at the best zlib compression the
// standard encoder offers, keeping whichever stream is smaller. Streams
// carrying ancillary chunks the encoder cannot reproduce are kept as they
// are.
package engine
