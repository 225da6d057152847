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

// Package render turns any encoded symbol into a pixel or text
// representation. It depends only on a small capability interface rather
// than on *qrcodegen.Symbol directly, so it works unchanged across Normal,
// Micro, and rMQR symbols.
package render

// Symbol is the capability a render back-end needs: module dimensions, a
// per-cell dark/light query, and the recommended quiet-zone border width.
// *qrcodegen.Symbol satisfies this without any explicit declaration.
type Symbol interface {
	Width() int
	Height() int
	IsDark(row, col int) bool
	QuietZone() int
}
