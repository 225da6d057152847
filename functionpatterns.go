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

// drawFunctionPatterns paints every function module (finder, separator,
// timing, alignment, and the format/version info placeholder) for v's
// symbol family onto a freshly allocated canvas. The format info area is
// reserved with placeholder zero bits; formatinfo.go overwrites it once a
// mask is chosen. Called once, before data placement.
func drawFunctionPatterns(v Version) *canvas {
	width, height := v.Size()
	c := newCanvas(width, height)

	switch v.class {
	case classMicro:
		drawMicroFunctionPatterns(c)
	case classRectangular:
		drawRMQRFunctionPatterns(c)
	default:
		drawNormalFunctionPatterns(c, v.normal)
	}

	c.state = stateFunctionsPlaced
	return c
}

// drawFinderPattern paints a 9x9 finder pattern (7x7 finder plus a 1-module
// light separator ring) centered at (cx, cy), clipped to the canvas.
func drawFinderPattern(c *canvas, cx, cy int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if c.inBounds(y, x) {
				dist := max(abs(dx), abs(dy))
				c.setFunction(y, x, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern paints a 5x5 alignment pattern centered at (cx, cy).
func drawAlignmentPattern(c *canvas, cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c.setFunction(cy+dy, cx+dx, max(abs(dx), abs(dy)) != 1)
		}
	}
}

func drawNormalFunctionPatterns(c *canvas, version int) {
	size := c.width

	for i := 0; i < size; i++ {
		c.setFunction(6, i, i%2 == 0)
		c.setFunction(i, 6, i%2 == 0)
	}

	drawFinderPattern(c, 3, 3)
	drawFinderPattern(c, size-4, 3)
	drawFinderPattern(c, 3, size-4)

	alignPatPos := alignmentPatternPositions[version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // Finder corners.
			}
			drawAlignmentPattern(c, int(alignPatPos[i]), int(alignPatPos[j]))
		}
	}

	reserveNormalFormatInfo(c)
	if version >= 7 {
		reserveVersionInfo(c)
	}
}

// drawMicroFunctionPatterns paints the single top-left finder, the timing
// lines running from the finder to the far edge, and the format info
// placeholder. Micro QR has no separate alignment patterns or version info.
func drawMicroFunctionPatterns(c *canvas) {
	size := c.width

	// Timing runs the full row/column; the finder pattern drawn afterward
	// overwrites the overlapping part, leaving only the col/row >= 8 segment
	// visible — the same overwrite-order trick Normal QR uses at row/col 6.
	for i := 0; i < size; i++ {
		c.setFunction(0, i, i%2 == 0)
		c.setFunction(i, 0, i%2 == 0)
	}

	drawFinderPattern(c, 3, 3)

	reserveMicroFormatInfo(c)
}

// drawRMQRFunctionPatterns paints rMQR's function patterns: a full finder
// top-left, smaller corner finder sub-patterns top-right and bottom-left,
// timing lines along row 6 and column 6, a single alignment pattern near
// the bottom-right corner (only when the width exceeds 15; no alignment
// patterns are placed along the center line), and the combined
// format/version info placeholder. rMQR has no light quiet-zone border and its function layout
// is secondary-sourced; see DESIGN.md.
func drawRMQRFunctionPatterns(c *canvas) {
	width, height := c.width, c.height

	for i := 0; i < width; i++ {
		c.setFunction(6, i, i%2 == 0)
	}
	for i := 0; i < height; i++ {
		c.setFunction(i, 6, i%2 == 0)
	}

	drawFinderPattern(c, 3, 3)
	drawCornerFinderPattern(c, width-3, 3)
	drawCornerFinderPattern(c, 3, height-3)

	if width > 15 {
		drawAlignmentPattern(c, width-4, height-4)
	}

	reserveRMQRFormatInfo(c)
}

// drawCornerFinderPattern paints rMQR's 5x5 corner finder sub-pattern
// (a 3x3 dark square ringed by 1 light module) centered at (cx, cy).
func drawCornerFinderPattern(c *canvas, cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			x, y := cx+dx, cy+dy
			if c.inBounds(y, x) {
				c.setFunction(y, x, max(abs(dx), abs(dy)) <= 1)
			}
		}
	}
}

// reserveNormalFormatInfo marks the two 15-bit format info strips (around
// the top-left finder, plus the two partial strips beside the other
// finders) as function modules, all light as a placeholder.
func reserveNormalFormatInfo(c *canvas) {
	size := c.width
	for i := 0; i <= 5; i++ {
		c.setFunction(i, 8, false)
	}
	c.setFunction(7, 8, false)
	c.setFunction(8, 8, false)
	c.setFunction(8, 7, false)
	for i := 9; i < 15; i++ {
		c.setFunction(8, 14-i, false)
	}
	for i := 0; i < 8; i++ {
		c.setFunction(8, size-1-i, false)
	}
	for i := 8; i < 15; i++ {
		c.setFunction(size-15+i, 8, false)
	}
	c.setFunction(size-8, 8, true) // Dark module, always present.
}

func reserveVersionInfo(c *canvas) {
	size := c.width
	for i := 0; i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		c.setFunction(b, a, false)
		c.setFunction(a, b, false)
	}
}

// reserveMicroFormatInfo marks Micro QR's single 15-bit format info strip
// (along row 8 and column 8 next to the finder) as function modules.
func reserveMicroFormatInfo(c *canvas) {
	for i := 1; i <= 8; i++ {
		c.setFunction(8, i, false)
	}
	for i := 1; i < 8; i++ {
		c.setFunction(i, 8, false)
	}
}

// reserveRMQRFormatInfo marks rMQR's combined 18-bit format/version info
// placeholder, adjacent to the top-left finder.
func reserveRMQRFormatInfo(c *canvas) {
	for i := 0; i < 18; i++ {
		row := 7 + i
		if c.inBounds(row, 8) {
			c.setFunction(row, 8, false)
		}
	}
	for i := 0; i < 18; i++ {
		col := 7 + i
		if c.inBounds(8, col) {
			c.setFunction(8, col, false)
		}
	}
}
