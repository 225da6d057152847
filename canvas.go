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

// module is the state of one canvas cell: whether it is dark, and whether
// it belongs to a function pattern (finder, separator, timing, alignment,
// format/version info) rather than to the data/EC payload. Separating "is
// function" from "is dark" lets the masker and data placer recognize
// function cells without a third, redundant boolean plane.
type module uint8

const (
	moduleLightData module = iota
	moduleDarkData
	moduleLightFunction
	moduleDarkFunction
)

func (m module) isDark() bool {
	return m == moduleDarkData || m == moduleDarkFunction
}

func (m module) isFunction() bool {
	return m == moduleLightFunction || m == moduleDarkFunction
}

// canvasState names one stage of a canvas's one-way construction sequence.
type canvasState int8

const (
	stateEmpty canvasState = iota
	stateFunctionsPlaced
	stateDataPlaced
	stateMasked
	stateFormatStamped
)

// canvas is the 2-D grid of modules that becomes a Symbol once construction
// completes. Width and height differ only for rMQR.
type canvas struct {
	width, height int
	modules       [][]module
	state         canvasState
}

func newCanvas(width, height int) *canvas {
	modules := make([][]module, height)
	for r := range modules {
		modules[r] = make([]module, width)
	}
	return &canvas{width: width, height: height, modules: modules}
}

func (c *canvas) inBounds(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

func (c *canvas) get(row, col int) module {
	return c.modules[row][col]
}

// setData writes a data/EC module. Must only be called during data
// placement, before masking.
func (c *canvas) setData(row, col int, dark bool) {
	if dark {
		c.modules[row][col] = moduleDarkData
	} else {
		c.modules[row][col] = moduleLightData
	}
}

// setFunction writes a function module. Must only be called while
// painting function patterns, before data placement.
func (c *canvas) setFunction(row, col int, dark bool) {
	if dark {
		c.modules[row][col] = moduleDarkFunction
	} else {
		c.modules[row][col] = moduleLightFunction
	}
}

// toggle XORs the dark bit of a data module in place, leaving function
// modules untouched. Used by mask application.
func (c *canvas) toggle(row, col int) {
	m := c.modules[row][col]
	if m.isFunction() {
		return
	}
	if m.isDark() {
		c.modules[row][col] = moduleLightData
	} else {
		c.modules[row][col] = moduleDarkData
	}
}

// countDataModules returns the number of non-function cells in the canvas,
// i.e. its exact data-module capacity in bits.
func (c *canvas) countDataModules() int {
	n := 0
	for _, row := range c.modules {
		for _, m := range row {
			if !m.isFunction() {
				n++
			}
		}
	}
	return n
}
