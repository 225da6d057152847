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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasToggleSkipsFunctionModules(t *testing.T) {
	c := newCanvas(3, 3)
	c.setFunction(0, 0, true)
	c.setData(1, 1, false)

	c.toggle(0, 0)
	c.toggle(1, 1)

	assert.True(t, c.get(0, 0).isDark()) // Function module untouched.
	assert.True(t, c.get(1, 1).isDark()) // Data module flipped.
}

func TestCanvasCountDataModules(t *testing.T) {
	c := newCanvas(3, 3)
	assert.Equal(t, 9, c.countDataModules())

	c.setFunction(0, 0, true)
	c.setFunction(1, 1, false)
	assert.Equal(t, 7, c.countDataModules())
}

func TestCanvasInBounds(t *testing.T) {
	c := newCanvas(5, 3)
	assert.True(t, c.inBounds(0, 0))
	assert.True(t, c.inBounds(2, 4))
	assert.False(t, c.inBounds(3, 0))
	assert.False(t, c.inBounds(0, 5))
	assert.False(t, c.inBounds(-1, 0))
}
