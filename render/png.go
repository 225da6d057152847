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
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG writes sym to w as a paletted PNG, scale pixels per module,
// padded by sym's quiet zone.
func WritePNG(w io.Writer, sym Symbol, scale int) error {
	if scale < 1 {
		scale = 1
	}

	border := sym.QuietZone()
	dim := (sym.Width() + 2*border) * scale
	dimH := (sym.Height() + 2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dimH), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // White.
	}

	for r := 0; r < sym.Height(); r++ {
		for c := 0; c < sym.Width(); c++ {
			if !sym.IsDark(r, c) {
				continue
			}
			startX := (c + border) * scale
			startY := (r + border) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1) // Black.
				}
			}
		}
	}

	return png.Encode(w, img)
}
