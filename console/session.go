// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/lvmul/numparse"
)

// Session is a single-threaded prompt/read conversation over a pair of
// streams. It is not safe for concurrent use.
type Session struct {
	in   *bufio.Reader
	out  io.Writer
	log  hclog.Logger
	def  float64
	werr error // first write failure; sticky
}

// NewSession wraps in and out. in is buffered internally, so callers must not
// read from it directly afterwards.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	o := gatherOptions(opts...)

	return &Session{
		in:  bufio.NewReader(in),
		out: out,
		log: o.logger,
		def: o.defaultValue,
	}
}

// Logger returns the Session's logger (never nil).
func (s *Session) Logger() hclog.Logger { return s.log }

// Default returns the value substituted for blank or invalid input.
func (s *Session) Default() float64 { return s.def }

// Printf writes formatted text. After the first write failure all further
// output is dropped and Err reports the failure.
func (s *Session) Printf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.werr = fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
}

// Println writes args separated by spaces and a trailing newline.
func (s *Session) Println(args ...any) {
	if s.werr != nil {
		return
	}
	if _, err := fmt.Fprintln(s.out, args...); err != nil {
		s.werr = fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
}

// Err returns the first write failure, if any.
func (s *Session) Err() error { return s.werr }

// ReadLine blocks for the next line of input and returns it without
// trimming. At end of input it returns whatever partial text remains (often
// ""), with a nil error.
func (s *Session) ReadLine() (string, error) {
	if s.werr != nil {
		return "", s.werr
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.log.Error("read failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	return line, nil
}

// Prompt writes text (no newline added) and then reads one line.
func (s *Session) Prompt(text string) (string, error) {
	s.Printf("%s", text)

	return s.ReadLine()
}

// ReadNumber reads one line and parses it with the Session default.
func (s *Session) ReadNumber() (numparse.Result, error) {
	line, err := s.ReadLine()
	if err != nil {
		return numparse.Result{Value: s.def, Status: numparse.Invalid, Err: err}, err
	}

	return numparse.Parse(line, s.def), nil
}
