/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"regexp"
	"strconv"
	"strings"
)

// Segment is one run of same-mode data within a symbol's payload. A symbol's
// data is one or more Segments concatenated; see Optimize for how runs of
// input are split across them.
type Segment struct {
	mode     Mode
	numChars int
	data     bitBuffer
}

// Mode reports the encoding mode of the segment.
func (s Segment) Mode() Mode { return s.mode }

// NumChars reports the length of the segment's unencoded content: digits,
// alphanumeric characters, bytes, or Kanji characters, depending on mode.
func (s Segment) NumChars() int { return s.numChars }

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// bitLength returns the encoded length in bits of segs at the given
// version, or -1 if any segment's character count overflows its count
// indicator's width.
func bitLength(segs []Segment, v Version) int {
	total := 0
	for _, seg := range segs {
		width, _ := modeIndicator(seg.mode, v)
		ccBits := numCharCountBits(seg.mode, v)
		if ccBits == 0 && seg.mode != eci {
			return -1 // Mode unsupported at this version (e.g. Kanji on M1).
		}
		if seg.numChars >= 1<<uint(ccBits) {
			return -1
		}
		total += int(width) + int(ccBits) + len(seg.data)
	}
	return total
}

// MakeNumeric creates a Numeric segment from a string of decimal digits.
// Returns ErrUnsupportedCharacterSet if digits contains a non-digit
// character.
func MakeNumeric(digits string) (Segment, *Error) {
	if !numericRegexp.MatchString(digits) {
		return Segment{}, newError(KindUnsupportedCharacterSet, "string %q contains non-numeric characters", digits)
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already validated.
		bb.appendBits(uint32(d), int8(n*3+1))
		i += n
	}

	return Segment{mode: Numeric, numChars: len(digits), data: bb}, nil
}

// MakeAlphanumeric creates an Alphanumeric segment (digits, uppercase
// letters, and the symbols " $%*+-./:"). Returns ErrUnsupportedCharacterSet
// if text contains any other character.
func MakeAlphanumeric(text string) (Segment, *Error) {
	if !alphanumericRegexp.MatchString(text) {
		return Segment{}, newError(KindUnsupportedCharacterSet, "string %q contains non-alphanumeric characters", text)
	}

	bb := make(bitBuffer, 0, len(text)*6)
	var i int
	for i = 0; i+1 < len(text); i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i]) * 45
		v += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(uint32(v), 11)
	}
	if i < len(text) {
		bb.appendBits(uint32(strings.IndexByte(alphanumericCharset, text[i])), 6)
	}

	return Segment{mode: Alphanumeric, numChars: len(text), data: bb}, nil
}

// MakeBytes creates a Byte segment from raw data.
func MakeBytes(data []byte) Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	bb.appendBytes(data)
	return Segment{mode: Byte, numChars: len(data), data: bb}
}

// MakeKanji creates a Kanji segment from Shift-JIS encoded text: pairs of
// bytes, each pair in [0x8140, 0x9FFC] or [0xE040, 0xEBBF]. Returns
// ErrInvalidCharacter if sjis has odd length or contains a byte pair
// outside those ranges.
func MakeKanji(sjis []byte) (Segment, *Error) {
	if len(sjis)%2 != 0 {
		return Segment{}, newError(KindInvalidCharacter, "Shift-JIS input has odd length %d", len(sjis))
	}

	bb := make(bitBuffer, 0, (len(sjis)/2)*13)
	for i := 0; i < len(sjis); i += 2 {
		c := uint32(sjis[i])<<8 | uint32(sjis[i+1])
		switch {
		case c >= 0x8140 && c <= 0x9FFC:
			c -= 0x8140
		case c >= 0xE040 && c <= 0xEBBF:
			c -= 0xC140
		default:
			return Segment{}, newError(KindInvalidCharacter, "byte pair 0x%04X is not a valid Shift-JIS Kanji codepoint", c)
		}
		packed := (c>>8)*0xC0 + (c & 0xFF)
		bb.appendBits(packed, 13)
	}

	return Segment{mode: Kanji, numChars: len(sjis) / 2, data: bb}, nil
}

// MakeECI creates a segment designating an Extended Channel Interpretation.
// Returns ErrDataTooLong if assignValue is out of the defined range.
func MakeECI(assignValue int) (Segment, *Error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return Segment{}, newError(KindDataTooLong, "ECI assignment value %d out of range", assignValue)
	case assignValue < 1<<7:
		bb.appendBits(uint32(assignValue), 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(uint32(assignValue), 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(uint32(assignValue), 21)
	default:
		return Segment{}, newError(KindDataTooLong, "ECI assignment value %d out of range", assignValue)
	}

	return Segment{mode: eci, numChars: 0, data: bb}, nil
}

// isNumeric, isAlphanumeric report whether every character of s belongs to
// the Numeric or Alphanumeric character set. Optimize classifies single
// bytes with isDigitByte and isAlphanumericByte instead.
func isNumeric(s string) bool      { return numericRegexp.MatchString(s) }
func isAlphanumeric(s string) bool { return alphanumericRegexp.MatchString(s) }
