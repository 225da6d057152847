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

import "fmt"

// versionClass distinguishes the three symbol families a Version can name.
type versionClass int8

const (
	classNormal versionClass = iota
	classMicro
	classRectangular
)

// Version is a tagged union selecting one of three symbol families: Normal
// QR (1-40), Micro QR (1-4), or rMQR (one of the enumerated rectangular
// sizes). The zero Version is not a usable version (Normal with version
// number 0); build one with NormalVersion, MicroVersion, or
// RectangularVersion.
type Version struct {
	class  versionClass
	normal int // 1..40, valid when class == classNormal.
	micro  int // 1..4, valid when class == classMicro.
	height int // valid when class == classRectangular.
	width  int // valid when class == classRectangular.
}

// MinVersion and MaxVersion bound Normal QR version numbers.
const (
	MinVersion = 1
	MaxVersion = 40
)

// NormalVersion builds a Normal QR Version. Panics if n is outside [1, 40];
// callers that accept user input should range-check before calling this.
func NormalVersion(n int) Version {
	if n < MinVersion || n > MaxVersion {
		panic("version number out of range")
	}
	return Version{class: classNormal, normal: n}
}

// MicroVersion builds a Micro QR Version (M1..M4, n in [1, 4]).
func MicroVersion(n int) Version {
	if n < 1 || n > 4 {
		panic("micro version number out of range")
	}
	return Version{class: classMicro, micro: n}
}

// RectangularVersion builds an rMQR Version from a (height, width) pair.
// Returns InvalidVersion if the pair isn't one of the enumerated rMQR
// sizes.
func RectangularVersion(height, width int) (Version, *Error) {
	if !isRMQRSize(height, width) {
		return Version{}, newError(KindInvalidVersion, "R%dx%d is not a defined rMQR size", height, width)
	}
	return Version{class: classRectangular, height: height, width: width}, nil
}

// IsNormal, IsMicro, and IsRectangular report which family this Version
// names.
func (v Version) IsNormal() bool      { return v.class == classNormal }
func (v Version) IsMicro() bool       { return v.class == classMicro }
func (v Version) IsRectangular() bool { return v.class == classRectangular }

// Size returns the (width, height) of the symbol in modules. Width and
// height are equal for Normal and Micro QR.
func (v Version) Size() (width, height int) {
	switch v.class {
	case classNormal:
		side := 4*v.normal + 17
		return side, side
	case classMicro:
		side := 2*v.micro + 9
		return side, side
	default:
		return v.width, v.height
	}
}

func (v Version) String() string {
	switch v.class {
	case classNormal:
		return fmt.Sprintf("Normal(%d)", v.normal)
	case classMicro:
		return fmt.Sprintf("M%d", v.micro)
	default:
		return fmt.Sprintf("R%dx%d", v.height, v.width)
	}
}

// EcLevel is the error correction level of a symbol.
type EcLevel int8

// EcLevel values.
const (
	Low      EcLevel = iota // Recovers about 7% of codewords.
	Medium                  // Recovers about 15% of codewords.
	Quartile                // Recovers about 25% of codewords.
	High                    // Recovers about 30% of codewords.
)

func (e EcLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// formatBits is the 2-bit code for e used in Normal/rMQR format information.
func (e EcLevel) formatBits() uint32 {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown error correction level")
	}
}

// allowedEcLevels lists the EcLevels permitted for v's version class, per
// spec.md §3: "Micro versions permit only specific subsets (M1: none; M2:
// L,M; M3: L,M; M4: L,M,Q). rMQR permits {M, H}."
func (v Version) allowedEcLevels() []EcLevel {
	switch v.class {
	case classMicro:
		switch v.micro {
		case 1:
			// M1 carries no real error correction; Low is a structural
			// placeholder so callers don't need a special case.
			return []EcLevel{Low}
		case 2, 3:
			return []EcLevel{Low, Medium}
		default: // M4
			return []EcLevel{Low, Medium, Quartile}
		}
	case classRectangular:
		return []EcLevel{Medium, High}
	default:
		return []EcLevel{Low, Medium, Quartile, High}
	}
}

// validateEcLevel reports whether ec is legal for v.
func (v Version) validateEcLevel(ec EcLevel) *Error {
	for _, allowed := range v.allowedEcLevels() {
		if allowed == ec {
			return nil
		}
	}
	return newError(KindInvalidVersion, "%s does not support EC level %s", v, ec)
}
