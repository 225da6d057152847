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

package render

import (
	"fmt"
	"io"
)

// Terminal writes sym to w using Unicode half-block characters, two module
// rows per terminal line, so the printed symbol keeps a roughly square
// aspect ratio in a monospace font.
func Terminal(w io.Writer, sym Symbol) {
	border := sym.QuietZone()
	width, height := sym.Width(), sym.Height()

	dark := func(row, col int) bool {
		if row < 0 || row >= height || col < 0 || col >= width {
			return false // Quiet zone is always light.
		}
		return sym.IsDark(row, col)
	}

	for r := -border; r < height+border; r += 2 {
		for c := -border; c < width+border; c++ {
			top, bot := dark(r, c), dark(r+1, c)
			switch {
			case top && bot:
				fmt.Fprint(w, "██")
			case top && !bot:
				fmt.Fprint(w, "▀▀")
			case !top && bot:
				fmt.Fprint(w, "▄▄")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}
