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

// Mode is the encoding mode of a segment.
type Mode int8

// Mode values for a segment. eci is not a real content mode; it tags an
// Extended Channel Interpretation designator segment.
const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
	eci
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Byte:
		return "Byte"
	case Kanji:
		return "Kanji"
	case eci:
		return "ECI"
	default:
		return "Unknown"
	}
}

// normalModeIndicator holds the 4-bit Normal-QR mode indicator value per
// Mode, indexed by Mode.
var normalModeIndicator = [5]uint32{
	Numeric:      0x1,
	Alphanumeric: 0x2,
	Byte:         0x4,
	Kanji:        0x8,
	eci:          0x7,
}

// normalCountBits holds the character-count-indicator width for Normal QR,
// one entry per version range (1-9, 10-26, 27-40), indexed by Mode.
var normalCountBits = [5][3]int8{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
	eci:          {0, 0, 0},
}

// microModeInfo describes the mode indicator for one Micro QR version: its
// bit width and value. Width 0 (M1) means no mode indicator is written at
// all — M1 supports Numeric only, implicitly.
type microModeInfo struct {
	width int8
	value uint32
}

// microModeIndicator[microVersion-1][mode] — only modes legal for that
// version are populated; others are zero and must never be consulted
// (segment construction rejects them earlier).
var microModeIndicator = [4][5]microModeInfo{
	{ // M1
		Numeric: {0, 0},
	},
	{ // M2
		Numeric:      {1, 0},
		Alphanumeric: {1, 1},
	},
	{ // M3
		Numeric:      {2, 0},
		Alphanumeric: {2, 1},
		Byte:         {2, 2},
	},
	{ // M4
		Numeric:      {3, 0},
		Alphanumeric: {3, 1},
		Byte:         {3, 2},
		Kanji:        {3, 3},
	},
}

// microCountBits[microVersion-1][mode] is the character-count-indicator
// width for Micro QR.
var microCountBits = [4][5]int8{
	{Numeric: 3},
	{Numeric: 4, Alphanumeric: 3},
	{Numeric: 5, Alphanumeric: 4, Byte: 4},
	{Numeric: 6, Alphanumeric: 5, Byte: 5, Kanji: 4},
}

// rmqrCountBits is the character-count-indicator width for rMQR, per Mode.
// rMQR reuses the Normal mode indicator (4 bits, same values) but has its
// own count-indicator widths; see DESIGN.md for provenance.
var rmqrCountBits = [5]int8{
	Numeric:      8,
	Alphanumeric: 7,
	Byte:         8,
	Kanji:        7,
	eci:          0,
}

// modeIndicator returns the mode indicator's bit width and value for the
// given version.
func modeIndicator(m Mode, v Version) (width int8, value uint32) {
	switch v.class {
	case classMicro:
		info := microModeIndicator[v.micro-1][m]
		return info.width, info.value
	default: // Normal and rMQR share the 4-bit indicator.
		return 4, normalModeIndicator[m]
	}
}

// numCharCountBits returns the character-count-indicator width for m at the
// given version.
func numCharCountBits(m Mode, v Version) int8 {
	switch v.class {
	case classMicro:
		return microCountBits[v.micro-1][m]
	case classRectangular:
		return rmqrCountBits[m]
	default:
		return normalCountBits[m][normalVersionRange(v.normal)]
	}
}

// normalVersionRange maps a Normal version to its row in the 3-row
// character-count-indicator tables (1-9, 10-26, 27-40).
func normalVersionRange(version int) int {
	switch {
	case version <= 9:
		return 0
	case version <= 26:
		return 1
	default:
		return 2
	}
}
