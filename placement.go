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

// placeData walks c's data area in the standard two-column zig-zag —
// starting at the right edge with an upward pass, moving left two columns
// at a time, alternating scan direction each pair — consuming one bit of bits per non-function
// cell visited, MSB-first. Normal QR and rMQR both reserve column 6 for
// the vertical timing pattern and must dodge it mid-scan; Micro QR's
// timing line sits at column 0, past the scan's final pair, so it needs
// no such adjustment.
func placeData(c *canvas, bits bitBuffer, v Version) {
	timingColumn := 6
	if v.class == classMicro {
		timingColumn = -1
	}

	i := 0
	upward := true
	for right := c.width - 1; right >= 1; right -= 2 {
		if right == timingColumn {
			right--
		}
		for vert := 0; vert < c.height; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j

				var y int
				if upward {
					y = c.height - 1 - vert
				} else {
					y = vert
				}

				if !c.get(y, x).isFunction() && i < len(bits) {
					c.setData(y, x, bits[i] == 1)
					i++
				}
			}
		}
		upward = !upward
	}

	if i != len(bits) {
		panic("qrcodegen: data placement did not consume the whole bit stream")
	}
	c.state = stateDataPlaced
}
