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

func TestEncodeFormatBitsFitsFifteenBits(t *testing.T) {
	for ec := Low; ec <= High; ec++ {
		for m := Mask(0); m < 8; m++ {
			seed := ec.formatBits()<<3 | uint32(m)
			bits := encodeFormatBits(seed, normalFormatXOR)
			assert.Zero(t, bits>>15)
		}
	}
}

func TestEncodeVersionBitsFitsEighteenBits(t *testing.T) {
	for v := 7; v <= 40; v++ {
		bits := encodeVersionBits(uint32(v))
		assert.Zero(t, bits>>18)
	}
}

func TestStampNormalFormatInfoSetsDarkModule(t *testing.T) {
	v := NormalVersion(5)
	c := drawFunctionPatterns(v)
	stampNormalFormatInfo(c, Medium, 0)
	assert.True(t, c.get(c.width-8, 8).isDark())
}

func TestStampMicroFormatInfoUsesRequestedEcLevel(t *testing.T) {
	v := MicroVersion(3)
	c := drawFunctionPatterns(v)

	stampMicroFormatInfo(c, v, Low, 0)
	low := snapshot(c)

	stampMicroFormatInfo(c, v, Medium, 0)
	medium := snapshot(c)

	assert.NotEqual(t, low, medium) // Different symbol numbers must stamp different bits.
}
