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

// Package base62 implements a fixed-block base-62 binary-to-text encoding.
//
// The output is strictly alphanumeric, which makes it safe for contexts that
// forbid punctuation: URLs, filenames, and case-sensitive but symbol-free
// fields. Unlike base64 there is no padding and no symbol outside [0-9A-Za-z].
//
// The scheme works on fixed blocks rather than on the input as one huge
// integer, so encoding and decoding are O(n) with plain 64-bit arithmetic:
//   - each group of 8 raw bytes is read as a big-endian uint64 and written as
//     exactly 11 base-62 digits (11 is the smallest m with 62^m >= 256^8);
//   - a final group of k < 8 bytes is written as ceil(11k/8) digits, with no
//     padding;
//   - decoding mirrors this, multiply-accumulating each digit and emitting the
//     value as big-endian bytes.
//
// Because 8/11 is not an exact ratio, not every symbol count is a legal
// encoded length; DecodedLen rejects counts (such as 1, 4 or 8) that no byte
// length can produce.
//
// The digit-to-symbol mapping is pluggable. StdEncoding uses '0'-'9', 'A'-'Z',
// 'a'-'z' in ascending digit order; NewEncoding accepts any 62 distinct
// non-NUL ASCII symbols. An Encoding is immutable after construction and safe
// for concurrent use.
//
// Symbols may also be consumed or produced as UTF-16 code units (each symbol
// zero-extended to 16 bits) via the *UTF16 variants, for interoperability with
// systems whose native string type is wide. The two representations are
// equivalent byte-for-byte in the low byte of each unit.
package base62
