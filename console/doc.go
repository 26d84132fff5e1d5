// Package console is the line-oriented I/O boundary of the multipliers.
//
// A Session pairs an input reader with an output writer and enforces the
// prompt-then-read ordering: every Prompt writes its text before it blocks
// on the next line. BuildMatrix drives a Session to populate a matrix cell
// by cell under the default-on-failure policy of package numparse.
//
// Only one failure is fatal here: an input stream that cannot be read
// (ErrInputUnreadable) or an output stream that cannot be written
// (ErrOutputUnwritable). End of input is not a failure; it reads as an
// empty line.
package console
