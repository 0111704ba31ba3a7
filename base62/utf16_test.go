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
	"testing"
	"testing/quick"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

func widen(s string) []uint16 {
	w := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		w[i] = uint16(s[i])
	}
	return w
}

// TestUTF16Equivalence is a property-based test that the wide and narrow
// encode paths agree unit-for-unit, and that the wide decode path recovers the
// original bytes.
func TestUTF16Equivalence(t *testing.T) {
	t.Parallel()

	equivalent := func(b []byte) bool {
		wide := StdEncoding.EncodeToUTF16(b)
		narrow := widen(StdEncoding.EncodeToString(b))
		if len(wide) != len(narrow) {
			return false
		}
		for i := range wide {
			if wide[i] != narrow[i] {
				return false
			}
		}
		dst := make([]byte, len(b))
		n, err := StdEncoding.DecodeUTF16(dst, wide)
		if err != nil || n != len(b) {
			return false
		}
		for i := range b {
			if dst[i] != b[i] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(equivalent, nil); err != nil {
		t.Error(err)
	}
}

func TestUTF16(t *testing.T) {
	t.Parallel()

	ftt.Run("UTF-16 surface", t, func(t *ftt.Test) {
		t.Run("encodes the known vectors", func(t *ftt.Test) {
			for _, tt := range encodeVectors {
				assert.Loosely(t, StdEncoding.EncodeToUTF16([]byte(tt.in)), should.Match(widen(tt.out)))
			}
		})

		t.Run("decodes the known vectors", func(t *ftt.Test) {
			for _, tt := range encodeVectors {
				dst := make([]byte, len(tt.in))
				n, err := StdEncoding.DecodeUTF16(dst, widen(tt.out))
				assert.Loosely(t, err, should.BeNil)
				assert.Loosely(t, dst[:n], should.Match([]byte(tt.in)))
			}
		})

		t.Run("rejects an invalid length before scanning", func(t *ftt.Test) {
			_, err := StdEncoding.DecodeUTF16(make([]byte, 8), make([]uint16, 8))
			assert.That(t, err, should.ErrLike(ErrInvalidLength))
		})

		t.Run("rejects a wide unit with its exact index", func(t *ftt.Test) {
			// One invalid unit at every position of a 7-unit input, covering
			// both the packed quad scan and the scalar tail.
			for i := 0; i < 7; i++ {
				src := widen("0DWjr0n")
				src[i] = 0x130
				_, err := StdEncoding.DecodeUTF16(make([]byte, 5), src)
				assert.That(t, err, should.ErrLike(CorruptInputError(i)))
			}
		})

		t.Run("rejects a short destination", func(t *ftt.Test) {
			_, err := StdEncoding.DecodeUTF16(make([]byte, 2), widen("0DWjr"))
			assert.That(t, err, should.ErrLike(ErrShortBuffer))

			_, werr := StdEncoding.EncodeUTF16(make([]uint16, 4), []byte("123"))
			assert.That(t, werr, should.ErrLike(ErrShortBuffer))
		})
	})
}

// TestInvalidUTF16Index tests the ASCII guard directly, including agreement
// between the packed and scalar scan forms at every index.
func TestInvalidUTF16Index(t *testing.T) {
	t.Parallel()

	ftt.Run("invalidUTF16Index", t, func(t *ftt.Test) {
		t.Run("accepts 7-bit clean input of any length", func(t *ftt.Test) {
			for n := 0; n < 10; n++ {
				assert.Loosely(t, invalidUTF16Index(widen("zzzzzzzzzz")[:n]), should.Equal(-1))
			}
		})

		t.Run("finds the first bad unit at any index", func(t *ftt.Test) {
			for _, bad := range []uint16{0x80, 0x100, 0xFFFF} {
				for n := 1; n < 10; n++ {
					for i := 0; i < n; i++ {
						src := make([]uint16, n)
						src[i] = bad
						assert.Loosely(t, invalidUTF16Index(src), should.Equal(i))
					}
				}
			}
		})

		t.Run("reports the first of several bad units", func(t *ftt.Test) {
			src := make([]uint16, 9)
			src[3] = 0x80
			src[7] = 0xFFFF
			assert.Loosely(t, invalidUTF16Index(src), should.Equal(3))
		})
	})
}
