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

func TestOptimizeAllNumeric(t *testing.T) {
	segs := Optimize("0123456789", NormalVersion(1))
	assert.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode())
}

func TestOptimizeAllAlphanumeric(t *testing.T) {
	segs := Optimize("HELLO WORLD", NormalVersion(1))
	assert.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].Mode())
}

func TestOptimizeMixedContent(t *testing.T) {
	segs := Optimize("HELLO1234567890world", NormalVersion(5))
	assert.NotEmpty(t, segs)

	total := 0
	for _, s := range segs {
		total += s.NumChars()
	}
	assert.Equal(t, 20, total)
}

func TestOptimizeEmptyString(t *testing.T) {
	assert.Nil(t, Optimize("", NormalVersion(1)))
}

func TestOptimizePrefersNumericOverAlphanumeric(t *testing.T) {
	// A long digit run should cost fewer bits as Numeric than Alphanumeric,
	// so the optimizer must not fall back to a single Byte/Alphanumeric run.
	segs := Optimize("123456789012345", NormalVersion(1))
	assert.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode())
}

func TestDataCapacityBitsPositiveForMicro(t *testing.T) {
	for m := 1; m <= 4; m++ {
		v := MicroVersion(m)
		for _, ec := range v.allowedEcLevels() {
			bits, ok := dataCapacityBits(v, ec)
			assert.True(t, ok)
			assert.Greater(t, bits, 0)
		}
	}
}

func TestSelectEncodingPicksSmallestVersion(t *testing.T) {
	v, ec, segs, err := SelectEncoding("HELLO", nil, nil, FamilyAny)
	assert.Nil(t, err)
	assert.NotEmpty(t, segs)
	assert.True(t, v.IsMicro() || v.IsNormal())
	assert.GreaterOrEqual(t, int(ec), int(Low))
}

func TestSelectEncodingRestrictsFamily(t *testing.T) {
	v, _, _, err := SelectEncoding("HELLO", nil, nil, FamilyNormal)
	assert.Nil(t, err)
	assert.True(t, v.IsNormal())
}

func TestSelectEncodingRejectsOverlongText(t *testing.T) {
	huge := make([]byte, 1<<20)
	_, _, _, err := SelectEncoding(string(huge), nil, nil, FamilyAny)
	assert.NotNil(t, err)
	assert.Equal(t, KindDataTooLong, err.Kind)
}
