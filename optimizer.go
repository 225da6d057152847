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
 *
 * Optimize implements a shortest-path segmentation search with no teacher
 * or pack precedent; it follows spec.md's own design-level description of
 * the algorithm rather than a retrieved implementation. See DESIGN.md.
 */

package qrcodegen

import (
	"sort"
	"strings"
)

// Family restricts auto version selection to one symbol family, or
// lets it range over all three.
type Family int8

const (
	FamilyAny Family = iota
	FamilyNormal
	FamilyMicro
	FamilyRectangular
)

// dpInf is the unreachable-state sentinel cost used by Optimize's DP.
const dpInf = 1 << 30

// modeState is one (position, mode) cell of Optimize's DP: the minimal bit
// cost of encoding the prefix ending here with the last segment in this
// mode, the length of that trailing same-mode run (needed to compute the
// next character's marginal cost under Numeric/Alphanumeric's group
// rounding), and where that run began.
type modeState struct {
	cost     int
	runLen   int
	segStart int
	valid    bool
}

// Optimize splits text into a minimal-bit-length run of Numeric,
// Alphanumeric, and Byte segments for version v. It runs a single-pass DP
// over input position: at each position and for each of the 3 modes, the
// cheapest way to have the trailing segment in that mode is either to
// extend the previous position's same-mode run (recomputing only the
// marginal cost of one more character) or to close off whatever was
// cheapest at the previous position and open a new segment. This keeps the
// search linear in len(text), unlike naively scoring every (start, end,
// mode) span. Kanji and ECI segments are never auto-detected — construct
// them with MakeKanji/MakeECI and combine them by hand when needed. Returns
// nil if text is empty or if some byte of text has no mode available at v.
func Optimize(text string, v Version) []Segment {
	n := len(text)
	if n == 0 {
		return nil
	}

	modes := [3]Mode{Numeric, Alphanumeric, Byte}
	headers := [3]int{headerBits(Numeric, v), headerBits(Alphanumeric, v), headerBits(Byte, v)}
	payload := [3]func(int) int{
		numericPayloadBits,
		alphanumericPayloadBits,
		func(n int) int { return 8 * n },
	}
	allowed := func(mi int, b byte) bool {
		switch mi {
		case 0:
			return isDigitByte(b)
		case 1:
			return isAlphanumericByte(b)
		default:
			return true
		}
	}

	dp := make([][3]modeState, n+1)
	bestAt := make([]int, n+1)
	bestMode := make([]int, n+1)
	bestMode[0] = -1

	for i := 1; i <= n; i++ {
		c := text[i-1]
		bestCost, bestM := dpInf, -1

		for mi := 0; mi < 3; mi++ {
			if headers[mi] < 0 || !allowed(mi, c) {
				continue
			}

			cost, runLen, segStart := dpInf, 0, 0
			if prev := dp[i-1][mi]; prev.valid {
				c2 := prev.cost - payload[mi](prev.runLen) + payload[mi](prev.runLen+1)
				if c2 < cost {
					cost, runLen, segStart = c2, prev.runLen+1, prev.segStart
				}
			}
			if bestAt[i-1] < dpInf {
				c2 := bestAt[i-1] + headers[mi] + payload[mi](1)
				if c2 < cost {
					cost, runLen, segStart = c2, 1, i-1
				}
			}

			if cost < dpInf {
				dp[i][mi] = modeState{cost: cost, runLen: runLen, segStart: segStart, valid: true}
				if cost < bestCost {
					bestCost, bestM = cost, mi
				}
			}
		}

		bestAt[i] = bestCost
		bestMode[i] = bestM
	}

	if bestMode[n] < 0 {
		return nil // Some byte of text has no mode at v (M1 and M2 have no Byte mode).
	}

	type run struct {
		mode     Mode
		start, n int
	}
	var runs []run
	for i, mi := n, bestMode[n]; i > 0; {
		st := dp[i][mi]
		runs = append(runs, run{mode: modes[mi], start: st.segStart, n: i - st.segStart})
		i, mi = st.segStart, bestMode[st.segStart]
	}
	for l, r := 0, len(runs)-1; l < r; l, r = l+1, r-1 {
		runs[l], runs[r] = runs[r], runs[l]
	}

	segs := make([]Segment, 0, len(runs))
	for _, r := range runs {
		sub := text[r.start : r.start+r.n]
		switch r.mode {
		case Numeric:
			seg, _ := MakeNumeric(sub) // Safe: the DP only assigns Numeric runs over digit bytes.
			segs = append(segs, seg)
		case Alphanumeric:
			seg, _ := MakeAlphanumeric(sub) // Safe: the DP only assigns Alphanumeric runs over allowed bytes.
			segs = append(segs, seg)
		default:
			segs = append(segs, MakeBytes([]byte(sub)))
		}
	}
	return segs
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isAlphanumericByte(b byte) bool {
	return strings.IndexByte(alphanumericCharset, b) >= 0
}

func numericPayloadBits(numDigits int) int {
	full, rem := numDigits/3, numDigits%3
	bits := full * 10
	switch rem {
	case 1:
		bits += 4
	case 2:
		bits += 7
	}
	return bits
}

func alphanumericPayloadBits(numChars int) int {
	bits := (numChars / 2) * 11
	if numChars%2 == 1 {
		bits += 6
	}
	return bits
}

// headerBits returns the fixed mode-indicator + character-count-indicator
// width for mode at version v, or -1 if unsupported there.
func headerBits(mode Mode, v Version) int {
	width, _ := modeIndicator(mode, v)
	ccBits := numCharCountBits(mode, v)
	if ccBits == 0 && mode != eci {
		return -1
	}
	return int(width) + int(ccBits)
}

// dataCapacityBits returns the usable payload capacity, in bits, for
// (v, ec), and false if the combination is invalid.
func dataCapacityBits(v Version, ec EcLevel) (int, bool) {
	if v.validateEcLevel(ec) != nil {
		return 0, false
	}
	switch v.class {
	case classMicro:
		info, ok := microECInfoFor(v, ec)
		if !ok {
			return 0, false
		}
		vi := microVersionTable[v.micro]
		return (info.dataCodewords-1)*8 + int(vi.finalCodewordBits), true
	case classRectangular:
		info := rmqrECInfoFor(v, ec)
		return info.dataCodewords * 8, true
	default:
		return numDataCodewords[ec][v.normal] * 8, true
	}
}

// candidateVersions lists every Version in family, in no particular order.
func candidateVersions(family Family) []Version {
	var out []Version
	if family == FamilyAny || family == FamilyMicro {
		for m := 1; m <= 4; m++ {
			out = append(out, MicroVersion(m))
		}
	}
	if family == FamilyAny || family == FamilyNormal {
		for n := MinVersion; n <= MaxVersion; n++ {
			out = append(out, NormalVersion(n))
		}
	}
	if family == FamilyAny || family == FamilyRectangular {
		for _, s := range rmqrSizes {
			rv, _ := RectangularVersion(s.height, s.width)
			out = append(out, rv)
		}
	}
	return out
}

// bestEcLevel returns the highest EcLevel legal for v under which segs'
// encoded length still fits v's capacity, trying High down to Low.
func bestEcLevel(v Version, segs []Segment) (EcLevel, bool) {
	bits := bitLength(segs, v)
	if bits < 0 {
		return 0, false
	}
	for _, lvl := range []EcLevel{High, Quartile, Medium, Low} {
		if v.validateEcLevel(lvl) != nil {
			continue
		}
		if capBits, ok := dataCapacityBits(v, lvl); ok && bits <= capBits {
			return lvl, true
		}
	}
	return 0, false
}

// SelectEncoding chooses a Version and EcLevel able to hold text and
// returns its optimized segmentation, per spec.md §4.2:
//   - both version and ec given: validate only.
//   - version given, ec nil: pick the highest EcLevel that still fits.
//   - version nil: search every candidate in family, smallest symbol
//     (by module area) first; ec, if given, is fixed, otherwise the
//     highest level that fits at each candidate is used.
func SelectEncoding(text string, version *Version, ec *EcLevel, family Family) (Version, EcLevel, []Segment, *Error) {
	if version != nil {
		segs := Optimize(text, *version)
		if segs == nil && text != "" {
			return Version{}, 0, nil, newError(KindDataTooLong, "text has characters no mode of %s can encode", *version)
		}
		if ec != nil {
			if err := version.validateEcLevel(*ec); err != nil {
				return Version{}, 0, nil, err
			}
			capBits, ok := dataCapacityBits(*version, *ec)
			bits := bitLength(segs, *version)
			if !ok || bits < 0 || bits > capBits {
				return Version{}, 0, nil, newError(KindDataTooLong, "text does not fit %s at EC level %s", *version, *ec)
			}
			return *version, *ec, segs, nil
		}
		lvl, ok := bestEcLevel(*version, segs)
		if !ok {
			return Version{}, 0, nil, newError(KindDataTooLong, "text does not fit %s at any error correction level", *version)
		}
		return *version, lvl, segs, nil
	}

	candidates := candidateVersions(family)
	sort.Slice(candidates, func(i, j int) bool {
		wi, hi := candidates[i].Size()
		wj, hj := candidates[j].Size()
		return wi*hi < wj*hj
	})

	for _, v := range candidates {
		segs := Optimize(text, v)
		bits := bitLength(segs, v)
		if bits < 0 || (segs == nil && text != "") {
			continue
		}
		if ec != nil {
			if v.validateEcLevel(*ec) != nil {
				continue
			}
			if capBits, ok := dataCapacityBits(v, *ec); ok && bits <= capBits {
				return v, *ec, segs, nil
			}
			continue
		}
		if lvl, ok := bestEcLevel(v, segs); ok {
			return v, lvl, segs, nil
		}
	}

	return Version{}, 0, nil, newError(KindDataTooLong, "text does not fit any supported version")
}
