// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base62

import (
	"errors"
	"fmt"
)

const (
	radix = 62

	// A full block maps blockBytes raw bytes to blockSyms symbols. 11 is the
	// smallest m such that 62^m >= 256^8, so a uint64 holds any block value.
	blockBytes = 8
	blockSyms  = 11
)

const maxInt = int(^uint(0) >> 1)

// ErrInvalidLength is wrapped by DecodedLen and the decoding functions when a
// symbol count corresponds to no byte count.
var ErrInvalidLength = errors.New("base62: invalid encoded length")

// EncodedLen returns the number of symbols produced by encoding n bytes,
// ceil(11n/8).
//
// EncodedLen panics if n is negative or if the result does not fit in an int;
// both are precondition violations, not data-dependent failures.
func EncodedLen(n int) int {
	switch {
	case n < 0:
		panic("base62: EncodedLen: negative length")
	case n > (maxInt-blockBytes+1)/blockSyms:
		panic("base62: EncodedLen: length overflow")
	}
	return (n*blockSyms + blockBytes - 1) / blockBytes
}

// DecodedLen returns the number of bytes represented by n symbols,
// floor(8n/11).
//
// Not every n is achievable: because 8/11 is not an exact ratio and a partial
// block occurs only at the end of a sequence, symbol counts such as 1, 4, 8 or
// 41 have no byte-length inverse. DecodedLen re-derives EncodedLen from the
// candidate result and fails with an error wrapping ErrInvalidLength unless it
// matches n exactly.
func DecodedLen(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	// Split off the full blocks so the arithmetic cannot overflow for any n.
	full, rem := n/blockSyms, n%blockSyms
	k := rem * blockBytes / blockSyms
	if (k*blockSyms+blockBytes-1)/blockBytes != rem {
		return 0, fmt.Errorf("%w: %d symbols correspond to no byte count", ErrInvalidLength, n)
	}
	return full*blockBytes + k, nil
}
