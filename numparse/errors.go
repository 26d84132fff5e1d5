// SPDX-License-Identifier: MIT

package numparse

import "errors"

// ErrInvalidNumber marks text that is not a floating-point literal.
var ErrInvalidNumber = errors.New("numparse: invalid number")
