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
	"fmt"
	"strings"
)

// Symbol is a fully constructed QR Code, Micro QR Code, or rMQR symbol. It
// is immutable once returned by EncodeText, EncodeSegments, or EncodeBinary.
type Symbol struct {
	version Version
	ec      EcLevel
	mask    Mask
	canvas  *canvas
}

// Version reports the symbol's version/size family.
func (s *Symbol) Version() Version { return s.version }

// EcLevel reports the symbol's error correction level.
func (s *Symbol) EcLevel() EcLevel { return s.ec }

// Mask reports the mask pattern actually used.
func (s *Symbol) Mask() Mask { return s.mask }

// Width and Height report the symbol's size in modules.
func (s *Symbol) Width() int  { return s.canvas.width }
func (s *Symbol) Height() int { return s.canvas.height }

// IsDark reports whether the module at (row, col) is dark. Panics if the
// coordinates are out of bounds.
func (s *Symbol) IsDark(row, col int) bool {
	return s.canvas.get(row, col).isDark()
}

// QuietZone reports the recommended light border, in modules, a renderer
// should pad around the symbol: 4 for Normal, 2 for Micro, and 0 for rMQR.
func (s *Symbol) QuietZone() int {
	switch s.version.class {
	case classMicro:
		return 2
	case classRectangular:
		return 0
	default:
		return 4
	}
}

func (s *Symbol) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol %s EC=%s mask=%d %dx%d\n", s.version, s.ec, s.mask, s.Width(), s.Height())
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.IsDark(y, x) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Option configures a call to EncodeText, EncodeSegments, or EncodeBinary.
type Option func(*encodeOptions)

type encodeOptions struct {
	version *Version
	ec      *EcLevel
	mask    Mask
	family  Family
}

func newEncodeOptions(opts []Option) *encodeOptions {
	o := &encodeOptions{mask: autoMask, family: FamilyAny}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithVersion pins the symbol to an exact Version, skipping auto-selection.
func WithVersion(v Version) Option {
	return func(o *encodeOptions) { o.version = &v }
}

// WithEcLevel pins the error correction level, skipping the
// boost-to-the-highest-that-fits behavior of auto-selection.
func WithEcLevel(ec EcLevel) Option {
	return func(o *encodeOptions) { o.ec = &ec }
}

// WithMask pins the mask pattern, skipping the penalty-score search.
func WithMask(mask Mask) Option {
	return func(o *encodeOptions) { o.mask = mask }
}

// WithFamily restricts auto version selection (when WithVersion is absent)
// to one symbol family. Ignored if WithVersion is given.
func WithFamily(family Family) Option {
	return func(o *encodeOptions) { o.family = family }
}

// EncodeText segments text automatically via Optimize and encodes it. By
// default the smallest Version (across all three families) and the highest
// EcLevel that fits are chosen automatically; use WithVersion, WithEcLevel,
// WithFamily, and WithMask to override.
func EncodeText(text string, opts ...Option) (*Symbol, *Error) {
	o := newEncodeOptions(opts)

	v, ec, segs, err := SelectEncoding(text, o.version, o.ec, o.family)
	if err != nil {
		return nil, err
	}
	return build(v, ec, segs, o.mask)
}

// EncodeSegments encodes a caller-assembled sequence of segments (e.g. to
// mix Kanji or ECI designators with auto-segmented runs) at an explicit
// Version and EcLevel.
func EncodeSegments(segs []Segment, version Version, ec EcLevel, opts ...Option) (*Symbol, *Error) {
	o := newEncodeOptions(opts)

	if err := version.validateEcLevel(ec); err != nil {
		return nil, err
	}

	bits := bitLength(segs, version)
	capBits, ok := dataCapacityBits(version, ec)
	if !ok {
		return nil, newError(KindInvalidVersion, "%s does not support EC level %s", version, ec)
	}
	if bits < 0 || bits > capBits {
		return nil, newError(KindDataTooLong, "segments need %d bits, %s/%s holds %d", bits, version, ec, capBits)
	}

	return build(version, ec, segs, o.mask)
}

// EncodeBinary is a convenience wrapper encoding raw bytes as a single Byte
// segment.
func EncodeBinary(data []byte, version Version, ec EcLevel, opts ...Option) (*Symbol, *Error) {
	return EncodeSegments([]Segment{MakeBytes(data)}, version, ec, opts...)
}

// build runs the five-stage pipeline described in spec.md §4: assemble the
// segment header/payload bit stream, split and Reed-Solomon-encode it into
// codeword blocks, paint function patterns onto a fresh canvas, place the
// interleaved data, choose (or apply the requested) mask, and stamp format
// information. The canvas moves through its one-way state machine (empty ->
// functions placed -> data placed -> masked -> format stamped) exactly once.
func build(v Version, ec EcLevel, segs []Segment, requestedMask Mask) (*Symbol, *Error) {
	if err := v.validateEcLevel(ec); err != nil {
		return nil, err
	}

	var bb bitBuffer
	for _, seg := range segs {
		width, value := modeIndicator(seg.mode, v)
		if width > 0 {
			bb.appendBits(value, width)
		}
		ccBits := numCharCountBits(seg.mode, v)
		bb.appendBits(uint32(seg.numChars), ccBits)
		bb = append(bb, seg.data...)
	}

	dataCapBits, ok := dataCapacityBits(v, ec)
	if !ok {
		return nil, newError(KindInvalidVersion, "%s does not support EC level %s", v, ec)
	}
	if len(bb) > dataCapBits {
		return nil, newError(KindDataTooLong, "encoded segments need %d bits, %s/%s holds %d", len(bb), v, ec, dataCapBits)
	}

	var terminatorBits int8 = 4
	finalCodewordBits := 8
	if v.class == classMicro {
		vi := microVersionTable[v.micro]
		terminatorBits, finalCodewordBits = vi.terminatorBits, int(vi.finalCodewordBits)
	}
	bb.padTo(dataCapBits, terminatorBits, finalCodewordBits)
	data := bb.bytes()

	var blocks []codewordBlock
	switch v.class {
	case classMicro:
		info, _ := microECInfoFor(v, ec)
		blocks = splitIntoBlocks(data, 1, info.ecCodewords)
	case classRectangular:
		info := rmqrECInfoFor(v, ec)
		blocks = splitIntoBlocks(data, info.numBlocks, info.ecPerBlock)
	default:
		blocks = splitIntoBlocks(data, numErrorCorrectionBlocks[ec][v.normal], eccCodeWordsPerBlock[ec][v.normal])
	}

	c := drawFunctionPatterns(v)
	capacityBits := c.countDataModules()

	dataEcBytes := 0
	for _, b := range blocks {
		dataEcBytes += len(b.data) + len(b.ec)
	}
	// The final data codeword is only finalCodewordBits wide (4 for M1/M3).
	remainderBits := capacityBits - (dataEcBytes*8 - (8 - finalCodewordBits))
	if remainderBits < 0 {
		return nil, newError(KindDataTooLong, "encoded data exceeds %s capacity", v)
	}

	bits := interleaveBlocks(blocks, int8(finalCodewordBits), remainderBits)
	if len(bits) != capacityBits {
		panic("qrcodegen: interleaved bit stream does not match canvas capacity")
	}

	placeData(c, bits, v)

	mask := chooseMask(c, v, ec, requestedMask)
	f := maskFormulaFor(v, mask)
	applyMask(c, f)
	c.state = stateMasked

	stampFormatInfo(c, v, ec, mask)
	c.state = stateFormatStamped

	return &Symbol{version: v, ec: ec, mask: mask, canvas: c}, nil
}
