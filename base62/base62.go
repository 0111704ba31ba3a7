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
	"encoding/binary"
	"errors"
	"strconv"
)

// ErrShortBuffer is returned when the destination buffer is too small to hold
// the encoded or decoded result. The contents of the destination are
// unspecified after a failure.
var ErrShortBuffer = errors.New("base62: short destination buffer")

// CorruptInputError reports the offset (in symbols) of the first input symbol
// that is not part of the alphabet, is a NUL, or is outside the 7-bit range.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "base62: illegal symbol at input offset " + strconv.FormatInt(int64(e), 10)
}

// putBlock writes the low len(dst) base-62 digits of v into dst, most
// significant digit first. len(dst) is at most blockSyms, which is enough to
// represent any uint64.
func (e *Encoding) putBlock(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = e.encode[v%radix]
		v /= radix
	}
}

// blockValue accumulates up to blockSyms symbols into a single integer,
// validating each symbol. off is the block's offset within the whole input and
// is only used to report error positions.
//
// A full 11-symbol block can represent values up to 62^11-1, which exceeds
// 2^64-1; such values cannot be produced by the encoder and simply wrap,
// matching the truncation applied when the value is written out.
func (e *Encoding) blockValue(src []byte, off int) (uint64, error) {
	var v uint64
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c > 0x7F || e.decodeMap[c] == invalidSymbol {
			return 0, CorruptInputError(off + i)
		}
		v = v*radix + uint64(e.decodeMap[c])
	}
	return v, nil
}

// Encode encodes src, writing EncodedLen(len(src)) symbols to dst. It returns
// the number of symbols written and ErrShortBuffer if dst cannot hold them.
func (e *Encoding) Encode(dst, src []byte) (int, error) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	di := 0
	for len(src) >= blockBytes {
		e.putBlock(dst[di:di+blockSyms], binary.BigEndian.Uint64(src))
		src = src[blockBytes:]
		di += blockSyms
	}
	if len(src) > 0 {
		var v uint64
		for _, b := range src {
			v = v<<8 | uint64(b)
		}
		e.putBlock(dst[di:n], v)
		di = n
	}
	return di, nil
}

// EncodeToString returns the base-62 encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// AppendEncode appends the encoded form of src to dst and returns the extended
// slice.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = append(dst, make([]byte, n)...)
	e.Encode(dst[len(dst)-n:], src)
	return dst
}

// Decode decodes src, writing the raw bytes to dst. It returns the number of
// bytes written.
//
// The symbol count is validated up front: if len(src) is not an achievable
// encoded length, Decode fails with an error wrapping ErrInvalidLength before
// writing anything. An out-of-alphabet, NUL or non-ASCII symbol fails the
// whole operation with a CorruptInputError; the decode of a block is
// all-or-nothing, and no partial output may be relied upon after any failure.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	di, si := 0, 0
	for len(src)-si >= blockSyms {
		v, err := e.blockValue(src[si:si+blockSyms], si)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(dst[di:], v)
		si += blockSyms
		di += blockBytes
	}
	if si < len(src) {
		v, err := e.blockValue(src[si:], si)
		if err != nil {
			return 0, err
		}
		// Emit the low n-di bytes, big-endian. High-order bits beyond the
		// partial byte count are always zero for encoder-produced input and
		// are silently discarded for hand-crafted input.
		for i := n - 1; i >= di; i-- {
			dst[i] = byte(v)
			v >>= 8
		}
		di = n
	}
	return di, nil
}

// DecodeString returns the bytes represented by the base-62 string s.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	n, err := DecodedLen(len(s))
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := e.Decode(dst, []byte(s)); err != nil {
		return nil, err
	}
	return dst, nil
}

// AppendDecode appends the decoded form of src to dst and returns the extended
// slice.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return nil, err
	}
	dst = append(dst, make([]byte, n)...)
	if _, err := e.Decode(dst[len(dst)-n:], src); err != nil {
		return nil, err
	}
	return dst, nil
}
