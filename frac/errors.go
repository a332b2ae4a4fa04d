// SPDX-License-Identifier: MIT

package frac

import "errors"

// ErrOverflow indicates that an intermediate or final magnitude of an
// arithmetic operation exceeded the representable 32-bit range. The
// operation aborts with the canonical zero result before any value is
// truncated; callers match it via errors.Is.
var ErrOverflow = errors.New("frac: arithmetic overflow")
