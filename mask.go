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

// Mask identifies one of a symbol's mask patterns: 0-7 for Normal and
// rMQR, 0-3 for Micro QR.
type Mask int8

const autoMask Mask = -1

// Penalty weights for Normal/rMQR mask scoring.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// microMaskFormula maps a Micro QR Mask (0-3) to the underlying formula
// index (1, 4, 6, or 7) shared with Normal/rMQR, per spec.md §4.5.
var microMaskFormula = [4]int{1, 4, 6, 7}

// maskInvert reports whether mask formula index f inverts the module at
// (row, col).
func maskInvert(f, row, col int) bool {
	switch f {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return (row*col)%2+(row*col)%3 == 0
	case 6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case 7:
		return ((row+col)%2+(row*col)%3)%2 == 0
	default:
		panic("qrcodegen: illegal mask formula index")
	}
}

// maskFormulaFor resolves a Version-scoped Mask to its underlying formula
// index.
func maskFormulaFor(v Version, m Mask) int {
	if v.class == classMicro {
		return microMaskFormula[m]
	}
	return int(m)
}

// applyMask XORs every data module (not function module) of c with the
// mask formula f. Applying it twice with the same f is a no-op.
func applyMask(c *canvas, f int) {
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			if maskInvert(f, row, col) {
				c.toggle(row, col)
			}
		}
	}
}

// chooseMask picks the best Mask for c among those legal for v: lowest
// penalty score for Normal/rMQR, highest sum1+sum2*16 score for Micro,
// ties broken toward the lowest mask index. c must already have its data
// placed (state stateDataPlaced).
func chooseMask(c *canvas, v Version, ec EcLevel, requested Mask) Mask {
	numMasks := 8
	if v.class == classMicro {
		numMasks = 4
	}
	if requested != autoMask {
		return requested
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
		applyMask(c, f) // Undo: XOR again.
	}
	return best
}

// normalPenaltyScore computes the 4-rule ISO/IEC 18004 penalty used by
// Normal QR and (approximately, per DESIGN.md) rMQR.
func normalPenaltyScore(c *canvas) int {
	result := 0

	for y := 0; y < c.height; y++ {
		result += runPenalty(func(x int) bool { return c.get(y, x).isDark() }, c.width)
	}
	for x := 0; x < c.width; x++ {
		result += runPenalty(func(y int) bool { return c.get(y, x).isDark() }, c.height)
	}

	for y := 0; y < c.height-1; y++ {
		for x := 0; x < c.width-1; x++ {
			d := c.get(y, x).isDark()
			if d == c.get(y, x+1).isDark() && d == c.get(y+1, x).isDark() && d == c.get(y+1, x+1).isDark() {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.get(y, x).isDark() {
				dark++
			}
		}
	}
	total := c.width * c.height
	k := (abs(dark*20-total*10)+total-1)/total - 1
	if k > 0 {
		result += k * penaltyN4
	}

	return result
}

// runPenalty scores one row or column of length n (accessed via at) for
// rule 1 (runs of >= 5) and rule 3 (finder-like patterns), the two rules
// that read along a single line.
func runPenalty(at func(int) bool, n int) int {
	result := 0
	runColor := false
	runLen := 0
	var history [7]int
	addHistory := func(length int) {
		if history[0] == 0 {
			length += n
		}
		copy(history[1:], history[:6])
		history[0] = length
	}
	countPatterns := func() int {
		v := history[1]
		if v == 0 {
			return 0
		}
		core := history[2] == v && history[3] == v*3 && history[4] == v && history[5] == v
		score := 0
		if core && history[0] >= v*4 && history[6] >= v {
			score++
		}
		if core && history[6] >= v*4 && history[0] >= v {
			score++
		}
		return score
	}

	for i := 0; i < n; i++ {
		d := at(i)
		if d == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			addHistory(runLen)
			if !runColor {
				result += countPatterns() * penaltyN3
			}
			runColor = d
			runLen = 1
		}
	}
	if runColor {
		addHistory(runLen)
		runLen = 0
	}
	runLen += n
	addHistory(runLen)
	result += countPatterns() * penaltyN3
	return result
}

// microMaskScore implements spec.md §4.5's Micro QR scoring: maximize
// sum1 + sum2*16, where sum1 counts dark modules in the rightmost column
// excluding its top row, and sum2 counts dark modules in the bottom row
// excluding its leftmost column.
func microMaskScore(c *canvas) int {
	sum1, sum2 := 0, 0
	rightCol := c.width - 1
	bottomRow := c.height - 1
	for y := 1; y < c.height; y++ {
		if c.get(y, rightCol).isDark() {
			sum1++
		}
	}
	for x := 1; x < c.width; x++ {
		if c.get(bottomRow, x).isDark() {
			sum2++
		}
	}
	return sum1 + sum2*16
}
