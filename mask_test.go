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

func TestApplyMaskIsInvolution(t *testing.T) {
	c := drawFunctionPatterns(NormalVersion(3))
	before := snapshot(c)

	applyMask(c, 3)
	applyMask(c, 3)

	assert.Equal(t, before, snapshot(c))
}

func TestApplyMaskLeavesFunctionModulesAlone(t *testing.T) {
	c := drawFunctionPatterns(NormalVersion(1))
	before := snapshot(c)

	applyMask(c, 0)

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.get(y, x).isFunction() {
				assert.Equal(t, before[y][x], c.get(y, x))
			}
		}
	}
}

func TestMaskFormulaForMicro(t *testing.T) {
	v := MicroVersion(2)
	assert.Equal(t, 1, maskFormulaFor(v, 0))
	assert.Equal(t, 4, maskFormulaFor(v, 1))
	assert.Equal(t, 6, maskFormulaFor(v, 2))
	assert.Equal(t, 7, maskFormulaFor(v, 3))
}

func TestMaskFormulaForNormal(t *testing.T) {
	v := NormalVersion(1)
	for m := Mask(0); m < 8; m++ {
		assert.Equal(t, int(m), maskFormulaFor(v, m))
	}
}

func TestChooseMaskHonorsExplicitRequest(t *testing.T) {
	v := NormalVersion(1)
	c := drawFunctionPatterns(v)
	placeData(c, make(bitBuffer, c.countDataModules()), v)

	got := chooseMask(c, v, Low, Mask(5))
	assert.Equal(t, Mask(5), got)
}

// pseudoRandomBits returns a deterministic, non-constant bitBuffer of length
// n so mask scoring sees realistic entropy instead of an all-zero (and
// hence degenerate/tied) data area.
func pseudoRandomBits(n int) bitBuffer {
	bits := make(bitBuffer, n)
	state := uint32(0x2545F491)
	for i := range bits {
		state = state*1664525 + 1013904223
		bits[i] = byte((state >> 30) & 1)
	}
	return bits
}

// bruteForceBestMask independently recomputes, for every legal mask, the
// same score chooseMask uses, and returns the best score's index with
// ties broken toward the lowest index — testable property #7.
func bruteForceBestMask(c *canvas, v Version, ec EcLevel) Mask {
	numMasks := 8
	if v.class == classMicro {
		numMasks = 4
	}

	best := Mask(0)
	bestScore := 0
	first := true
	for m := Mask(0); int(m) < numMasks; m++ {
		f := maskFormulaFor(v, m)
		applyMask(c, f)
		stampFormatInfo(c, v, ec, m)

		var score int
		if v.class == classMicro {
			score = microMaskScore(c)
		} else {
			score = -normalPenaltyScore(c)
		}
		if first || score > bestScore {
			best, bestScore, first = m, score, false
		}
		applyMask(c, f)
	}
	return best
}

func TestChooseMaskMinimizesNormalPenaltyOverAllCandidates(t *testing.T) {
	v := NormalVersion(3)
	ec := Medium

	c := drawFunctionPatterns(v)
	bits := pseudoRandomBits(c.countDataModules())
	placeData(c, bits, v)

	want := bruteForceBestMask(c, v, ec)
	got := chooseMask(c, v, ec, autoMask)
	assert.Equal(t, want, got)
}

func TestChooseMaskMaximizesMicroScoreOverAllCandidates(t *testing.T) {
	v := MicroVersion(3)
	ec := Low

	c := drawFunctionPatterns(v)
	bits := pseudoRandomBits(c.countDataModules())
	placeData(c, bits, v)

	want := bruteForceBestMask(c, v, ec)
	got := chooseMask(c, v, ec, autoMask)
	assert.Equal(t, want, got)
}

func snapshot(c *canvas) [][]module {
	out := make([][]module, c.height)
	for y := range out {
		out[y] = make([]module, c.width)
		copy(out[y], c.modules[y])
	}
	return out
}
