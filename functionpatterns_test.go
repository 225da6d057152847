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

func TestDrawFunctionPatternsNormal(t *testing.T) {
	for n := 1; n <= 40; n += 7 {
		c := drawFunctionPatterns(NormalVersion(n))
		assertHasBothColors(t, c)
		assert.Equal(t, stateFunctionsPlaced, c.state)
	}
}

func TestDrawFunctionPatternsMicro(t *testing.T) {
	for m := 1; m <= 4; m++ {
		c := drawFunctionPatterns(MicroVersion(m))
		assertHasBothColors(t, c)
	}
}

func TestDrawFunctionPatternsRMQR(t *testing.T) {
	for _, s := range rmqrSizes {
		v, err := RectangularVersion(s.height, s.width)
		assert.Nil(t, err)
		c := drawFunctionPatterns(v)
		assertHasBothColors(t, c)
	}
}

func assertHasBothColors(t *testing.T, c *canvas) {
	t.Helper()
	hasDark, hasLight := false, false
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.get(y, x).isDark() {
				hasDark = true
			} else {
				hasLight = true
			}
		}
	}
	assert.True(t, hasDark)
	assert.True(t, hasLight)
}

func TestRMQRCapacityMatchesConstruction(t *testing.T) {
	for _, s := range rmqrSizes {
		c := newCanvas(s.width, s.height)
		drawRMQRFunctionPatterns(c)
		assert.Equal(t, rmqrCapacity[s], c.countDataModules())
	}
}
