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

// StdAlphabet is the canonical digit ordering: ASCII-ascending, digits first.
const StdAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrAlphabet is wrapped by every alphabet construction failure returned from
// NewEncoding.
var ErrAlphabet = errors.New("base62: invalid alphabet")

// invalidSymbol marks unused slots of the reverse lookup table.
const invalidSymbol = 0xFF

// An Encoding is a base-62 codec over a particular 62-symbol alphabet.
//
// It holds the forward digit-to-symbol table and the 128-entry reverse table.
// Encodings are immutable once constructed and may be shared freely between
// goroutines.
type Encoding struct {
	encode    [radix]byte
	decodeMap [128]byte
}

// StdEncoding is the codec over StdAlphabet.
var StdEncoding = mustEncoding(StdAlphabet)

// NewEncoding builds an Encoding from the given 62-symbol alphabet.
//
// Every symbol must be a distinct, non-NUL byte in the 7-bit ASCII range.
// Each way the alphabet can be malformed (wrong length, NUL symbol, non-ASCII
// symbol, duplicate symbol) yields a distinct error wrapping ErrAlphabet; no
// fallback alphabet is ever substituted.
func NewEncoding(alphabet string) (*Encoding, error) {
	if len(alphabet) != radix {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrAlphabet, len(alphabet), radix)
	}
	e := &Encoding{}
	for i := range e.decodeMap {
		e.decodeMap[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		switch {
		case c == 0:
			return nil, fmt.Errorf("%w: NUL symbol at index %d", ErrAlphabet, i)
		case c > 0x7F:
			return nil, fmt.Errorf("%w: non-ASCII symbol 0x%02X at index %d", ErrAlphabet, c, i)
		case e.decodeMap[c] != invalidSymbol:
			return nil, fmt.Errorf("%w: duplicate symbol %q at index %d", ErrAlphabet, c, i)
		}
		e.encode[i] = c
		e.decodeMap[c] = byte(i)
	}
	return e, nil
}

func mustEncoding(alphabet string) *Encoding {
	e, err := NewEncoding(alphabet)
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the 62 symbols of e in digit order.
func (e *Encoding) Alphabet() string {
	return string(e.encode[:])
}
