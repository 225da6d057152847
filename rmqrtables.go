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
 * The rMQR size enumeration and capacity/block tables are secondary-
 * sourced (no original_source/ material survived distillation) and are
 * derived programmatically rather than transcribed from the annex, so
 * that canvas capacity and codeword accounting can never drift apart.
 * See DESIGN.md for provenance notes.
 */

package qrcodegen

// rmqrSize names one enumerated rMQR symbol size.
type rmqrSize struct {
	height, width int
}

// rmqrSizes enumerates the supported rMQR dimensions.
var rmqrSizes = buildRMQRSizes()

func buildRMQRSizes() []rmqrSize {
	layout := []struct {
		height int
		widths []int
	}{
		{7, []int{43, 59, 77, 99, 139}},
		{9, []int{43, 59, 77, 99, 139}},
		{11, []int{27, 43, 59, 77, 99, 139}},
		{13, []int{27, 43, 59, 77, 99, 139}},
		{15, []int{27, 43, 59, 77, 99, 139}},
		{17, []int{43, 59, 77, 99}},
	}
	var sizes []rmqrSize
	for _, row := range layout {
		for _, w := range row.widths {
			sizes = append(sizes, rmqrSize{height: row.height, width: w})
		}
	}
	return sizes
}

func isRMQRSize(height, width int) bool {
	for _, s := range rmqrSizes {
		if s.height == height && s.width == width {
			return true
		}
	}
	return false
}

// rmqrCapacity maps an rMQR size index (position in rmqrSizes) to its raw
// data-module capacity, computed once at init time by actually painting
// the function patterns onto a blank canvas of that size and counting the
// cells left over. This guarantees the capacity used for version/EC
// selection can never disagree with what placement later finds available.
var rmqrCapacity map[rmqrSize]int

func init() {
	rmqrCapacity = make(map[rmqrSize]int, len(rmqrSizes))
	for _, s := range rmqrSizes {
		c := newCanvas(s.width, s.height)
		drawRMQRFunctionPatterns(c)
		rmqrCapacity[s] = c.countDataModules()
	}
}

// rmqrECInfo describes the codeword split for one (size, EC level)
// combination. rMQR's data is carried in one or two blocks whose data
// lengths differ by at most one codeword; splitting is only used once capacity exceeds a single RS block's
// practical limit.
type rmqrECInfo struct {
	dataCodewords int
	ecPerBlock    int
	numBlocks     int
}

// rmqrECRatio approximates the fraction of total codewords spent on error
// correction, mirroring Normal QR's rough EC/data ratios since the true
// annex ratios were not recoverable from the retained corpus.
var rmqrECRatio = map[EcLevel]float64{
	Medium: 0.15,
	High:   0.30,
}

const rmqrMaxBlockDataCodewords = 126 // Data codewords above this split the symbol into two RS blocks.

func rmqrECInfoFor(v Version, ec EcLevel) rmqrECInfo {
	capacityBits := rmqrCapacity[rmqrSize{height: v.height, width: v.width}]
	totalCodewords := capacityBits / 8

	ecTotal := int(float64(totalCodewords) * rmqrECRatio[ec])
	if ecTotal < 1 {
		ecTotal = 1
	}
	dataTotal := totalCodewords - ecTotal

	numBlocks := 1
	if dataTotal > rmqrMaxBlockDataCodewords {
		numBlocks = 2
	}
	ecPerBlock := ecTotal / numBlocks
	if ecPerBlock < 1 {
		ecPerBlock = 1
	}

	return rmqrECInfo{dataCodewords: dataTotal, ecPerBlock: ecPerBlock, numBlocks: numBlocks}
}
