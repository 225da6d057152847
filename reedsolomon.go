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

// divisorCache memoizes generator polynomials by degree; the same degree
// recurs across many (version, EC level) pairs.
var divisorCache = make(map[int][]byte)

// reedSolomonDivisor returns the degree-th Reed-Solomon generator
// polynomial, coefficients stored highest-to-lowest power excluding the
// implicit leading 1.
func reedSolomonDivisor(degree int) []byte {
	if d, ok := divisorCache[degree]; ok {
		return d
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, 0x02)
	}

	divisorCache[degree] = result
	return result
}

// reedSolomonRemainder returns the error correction codewords for data
// under the given generator polynomial, via polynomial long division.
func reedSolomonRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}
	return result
}

// codewordBlock is one Reed-Solomon block: its data codewords followed by
// its EC codewords.
type codewordBlock struct {
	data []byte
	ec   []byte
}

// splitIntoBlocks partitions data into numBlocks blocks (the first blocks
// one codeword shorter than the rest, as ISO/IEC 18004 requires) and
// appends ecLen EC codewords to each. ecLen == 0 is valid (Micro QR M1,
// which carries no error correction at all).
func splitIntoBlocks(data []byte, numBlocks, ecLen int) []codewordBlock {
	rawCodewords := len(data) + ecLen*numBlocks
	shortBlockLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks

	var divisor []byte
	if ecLen > 0 {
		divisor = reedSolomonDivisor(ecLen)
	}

	blocks := make([]codewordBlock, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - ecLen
		if i >= numShortBlocks {
			dataLen++
		}
		dat := data[k : k+dataLen]
		k += dataLen

		var ec []byte
		if ecLen > 0 {
			ec = reedSolomonRemainder(dat, divisor)
		}
		blocks[i] = codewordBlock{data: dat, ec: ec}
	}
	return blocks
}

// interleaveBlocks concatenates blocks column-major (all blocks' first
// codeword, then all second codewords, ...) into a single bit stream: data
// codewords first, then EC codewords, with a trailing run of remainderBits
// zero bits. finalDataCodewordBits narrows only the very last data
// codeword in the whole stream — 4 instead of 8 — for Micro QR M1/M3,
// whose final data codeword is nibble-wide; pass 8 everywhere else.
func interleaveBlocks(blocks []codewordBlock, finalDataCodewordBits int8, remainderBits int) bitBuffer {
	var bb bitBuffer

	totalData, maxData := 0, 0
	for _, b := range blocks {
		totalData += len(b.data)
		maxData = max(maxData, len(b.data))
	}

	emitted := 0
	for i := 0; i < maxData; i++ {
		for _, b := range blocks {
			if i >= len(b.data) {
				continue
			}
			emitted++
			width := int8(8)
			if emitted == totalData {
				width = finalDataCodewordBits
			}
			bb.appendBits(uint32(b.data[i])>>uint(8-width), width)
		}
	}

	maxEC := 0
	for _, b := range blocks {
		maxEC = max(maxEC, len(b.ec))
	}
	for i := 0; i < maxEC; i++ {
		for _, b := range blocks {
			if i < len(b.ec) {
				bb.appendBits(uint32(b.ec[i]), 8)
			}
		}
	}

	if remainderBits > 0 {
		bb.appendBits(0, int8(remainderBits))
	}
	return bb
}
