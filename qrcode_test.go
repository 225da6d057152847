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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAnnexIFirstCodewords reproduces ISO/IEC 18004 Annex I's worked example:
// "01234567" encoded as Numeric mode in a Normal V1 symbol begins with data
// codewords 0x10 0x20 0x0C.
func TestAnnexIFirstCodewords(t *testing.T) {
	v := NormalVersion(1)
	seg, err := MakeNumeric("01234567")
	assert.Nil(t, err)

	var bb bitBuffer
	width, value := modeIndicator(seg.Mode(), v)
	bb.appendBits(value, width)
	bb.appendBits(uint32(seg.NumChars()), numCharCountBits(seg.Mode(), v))
	bb = append(bb, seg.data...)

	bytes := bb.bytes()
	assert.GreaterOrEqual(t, len(bytes), 3)
	assert.Equal(t, []byte{0x10, 0x20, 0x0C}, bytes[:3])
}

func TestEncodeTextAnnexINormal(t *testing.T) {
	v := NormalVersion(1)
	sym, err := EncodeText("01234567", WithVersion(v), WithEcLevel(Medium))
	assert.Nil(t, err)
	assert.Equal(t, Medium, sym.EcLevel())
	w, h := v.Size()
	assert.Equal(t, w, sym.Width())
	assert.Equal(t, h, sym.Height())
}

func TestEncodeTextAnnexIMicro(t *testing.T) {
	v := MicroVersion(2)
	sym, err := EncodeText("01234567", WithVersion(v), WithEcLevel(Low))
	assert.Nil(t, err)
	assert.Equal(t, Low, sym.EcLevel())
	assert.True(t, sym.Version().IsMicro())
}

func TestEncodeTextAlphanumericVersion1Quartile(t *testing.T) {
	v := NormalVersion(1)
	sym, err := EncodeText("HELLO WORLD", WithVersion(v), WithEcLevel(Quartile))
	assert.Nil(t, err)
	assert.Equal(t, Quartile, sym.EcLevel())
}

func TestEncodeBinarySevenBytesFitVersion1Low(t *testing.T) {
	sym, err := EncodeBinary(make([]byte, 7), NormalVersion(1), Low)
	assert.Nil(t, err)
	assert.True(t, sym.Version().IsNormal())
}

func TestEncodeBinaryRejectsOverCapacity(t *testing.T) {
	_, err := EncodeBinary(make([]byte, 2954), NormalVersion(40), Low)
	assert.NotNil(t, err)
	assert.Equal(t, KindDataTooLong, err.Kind)
}

func TestEncodeBinaryAcceptsMaxCapacity(t *testing.T) {
	_, err := EncodeBinary(make([]byte, 2953), NormalVersion(40), Low)
	assert.Nil(t, err)
}

func TestEncodeSegmentsRejectsOverlongSegments(t *testing.T) {
	// A segment list too long for the chosen version/EC.
	segs := []Segment{MakeBytes(make([]byte, 1000))}
	_, err := EncodeSegments(segs, NormalVersion(1), Low)
	assert.NotNil(t, err)
	assert.Equal(t, KindDataTooLong, err.Kind)
}

// TestMakeNumericExplicitModeRejectsNonDigit reproduces spec.md §8 scenario
// 6: "A" requested as an explicit Numeric segment is caught as a
// caller-catchable error, not a panic.
func TestMakeNumericExplicitModeRejectsNonDigit(t *testing.T) {
	_, err := MakeNumeric("A")
	assert.NotNil(t, err)
	assert.Equal(t, KindUnsupportedCharacterSet, err.Kind)
}

func TestEncodeTextEmptyStringProducesPaddingOnlySymbol(t *testing.T) {
	sym, err := EncodeText("", WithVersion(NormalVersion(1)), WithEcLevel(Low))
	assert.Nil(t, err)
	assert.NotNil(t, sym)
}

func TestEncodeTextHonorsExplicitMask(t *testing.T) {
	sym, err := EncodeText("HELLO", WithVersion(NormalVersion(2)), WithEcLevel(Low), WithMask(Mask(3)))
	assert.Nil(t, err)
	assert.Equal(t, Mask(3), sym.Mask())
}

func TestEncodeTextRestrictsFamily(t *testing.T) {
	sym, err := EncodeText("HI", WithFamily(FamilyMicro))
	assert.Nil(t, err)
	assert.True(t, sym.Version().IsMicro())
}

func TestSymbolStringIsNotEmpty(t *testing.T) {
	sym, err := EncodeText("HELLO", WithVersion(NormalVersion(2)), WithEcLevel(Low))
	assert.Nil(t, err)
	s := sym.String()
	assert.NotEmpty(t, s)
}

func TestEncodeTextPicksVersionAutomatically(t *testing.T) {
	sym, err := EncodeText("https://example.com/this-is-a-moderately-long-url")
	assert.Nil(t, err)
	assert.NotNil(t, sym)
}
