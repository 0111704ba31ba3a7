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

import "encoding/binary"

// invalidUTF16Index returns the index of the first code unit outside the 7-bit
// range, or -1 if every unit is 7-bit clean.
//
// The bulk of the scan ORs four units at a time against a shared mask; the
// scalar tail then pins down the exact index. The two loops agree bit-exactly:
// the wide loop only ever rejects a quad that the scalar loop would reject.
func invalidUTF16Index(src []uint16) int {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		if (src[i]|src[i+1]|src[i+2]|src[i+3])&^0x7F != 0 {
			break
		}
	}
	for ; i < len(src); i++ {
		if src[i]&^0x7F != 0 {
			return i
		}
	}
	return -1
}

// EncodeUTF16 encodes src, writing EncodedLen(len(src)) UTF-16 code units to
// dst, each symbol zero-extended. It returns the number of units written and
// ErrShortBuffer if dst cannot hold them.
//
// The output is unit-for-unit identical to the low bytes produced by Encode.
func (e *Encoding) EncodeUTF16(dst []uint16, src []byte) (int, error) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	var scratch [blockSyms]byte
	di := 0
	for len(src) >= blockBytes {
		e.putBlock(scratch[:], binary.BigEndian.Uint64(src))
		for i, c := range scratch {
			dst[di+i] = uint16(c)
		}
		src = src[blockBytes:]
		di += blockSyms
	}
	if len(src) > 0 {
		var v uint64
		for _, b := range src {
			v = v<<8 | uint64(b)
		}
		m := n - di
		e.putBlock(scratch[:m], v)
		for i, c := range scratch[:m] {
			dst[di+i] = uint16(c)
		}
		di = n
	}
	return di, nil
}

// EncodeToUTF16 returns the base-62 encoding of src as UTF-16 code units.
func (e *Encoding) EncodeToUTF16(src []byte) []uint16 {
	dst := make([]uint16, EncodedLen(len(src)))
	e.EncodeUTF16(dst, src)
	return dst
}

// DecodeUTF16 decodes base-62 symbols presented as UTF-16 code units, writing
// the raw bytes to dst and returning the number of bytes written.
//
// The symbol count is validated first, then the whole input is screened for
// units outside the 7-bit range; both checks fail atomically, before any
// narrowing or output. Each block is then narrowed into a fixed scratch
// buffer and decoded exactly as in Decode.
func (e *Encoding) DecodeUTF16(dst []byte, src []uint16) (int, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return 0, err
	}
	if i := invalidUTF16Index(src); i >= 0 {
		return 0, CorruptInputError(i)
	}
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	var scratch [blockSyms]byte
	di, si := 0, 0
	for len(src)-si >= blockSyms {
		narrow(scratch[:], src[si:si+blockSyms])
		v, err := e.blockValue(scratch[:], si)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(dst[di:], v)
		si += blockSyms
		di += blockBytes
	}
	if si < len(src) {
		m := len(src) - si
		narrow(scratch[:m], src[si:])
		v, err := e.blockValue(scratch[:m], si)
		if err != nil {
			return 0, err
		}
		for i := n - 1; i >= di; i-- {
			dst[i] = byte(v)
			v >>= 8
		}
		di = n
	}
	return di, nil
}

// narrow extracts the low byte of each code unit. The guard has already
// established that the high bytes are zero, so this is independent of the
// platform's native byte order.
func narrow(dst []byte, src []uint16) {
	for i, u := range src {
		dst[i] = byte(u)
	}
}
