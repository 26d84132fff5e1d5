// SPDX-License-Identifier: MIT

package console

import "errors"

var (
	// ErrInputUnreadable wraps any read failure other than end of input.
	ErrInputUnreadable = errors.New("console: input stream unreadable")

	// ErrOutputUnwritable wraps the first failed write to the output stream.
	ErrOutputUnwritable = errors.New("console: output stream unwritable")
)
