// Copyright (c) 2024 The btc-vision developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serial

import "errors"

var (
	// ErrWriteBeyondCapacity is returned when a write would grow the
	// buffer beyond the fixed capacity it was created with. The write is
	// dropped and the writer keeps returning this error.
	ErrWriteBeyondCapacity = errors.New("write beyond buffer capacity")

	// ErrReadBeyondBounds is returned when a read would run past the end
	// of the buffer being read.
	ErrReadBeyondBounds = errors.New("read beyond buffer bounds")

	// ErrInvalidOffset is returned when an offset outside the buffer
	// bounds is requested.
	ErrInvalidOffset = errors.New("offset beyond buffer bounds")

	// ErrStringTooLong is returned when a string longer than the 16 bit
	// length prefix can describe is written.
	ErrStringTooLong = errors.New("string exceeds 16 bit length prefix")
)
