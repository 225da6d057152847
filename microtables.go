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
 * Micro QR capacity tables are secondary-sourced (no original_source/
 * material survived distillation); see DESIGN.md for provenance notes.
 */

package qrcodegen

// microVersionInfo describes capacity facts that depend only on the Micro
// QR version, not on EC level.
type microVersionInfo struct {
	totalBits         int   // Total data-module capacity (data + EC bits).
	finalCodewordBits int8  // Width of the last data codeword: 4 for M1/M3, 8 otherwise.
	terminatorBits    int8  // Terminator width, per spec.md §4.1.
	symbolNumber      uint32 // 3-bit code identifying (version, EC level) in format info.
}

// microVersionTable is indexed by Micro version (1..4); index 0 is unused.
var microVersionTable = [5]microVersionInfo{
	{},
	{totalBits: 36, finalCodewordBits: 4, terminatorBits: 3},
	{totalBits: 80, finalCodewordBits: 8, terminatorBits: 5},
	{totalBits: 132, finalCodewordBits: 4, terminatorBits: 7},
	{totalBits: 192, finalCodewordBits: 8, terminatorBits: 9},
}

// microECInfo describes the data/EC codeword split for one (version, EC
// level) combination.
type microECInfo struct {
	dataCodewords int // Count includes the short final codeword, if any.
	ecCodewords   int
	valid         bool
}

// microECTable[version-1][ecLevel] holds the codeword split. M1 has no EC
// level (see Version.allowedEcLevels); its sole entry lives at [Low].
var microECTable = [4][4]microECInfo{
	{ // M1
		Low: {dataCodewords: 5, ecCodewords: 0, valid: true},
	},
	{ // M2
		Low:    {dataCodewords: 5, ecCodewords: 5, valid: true},
		Medium: {dataCodewords: 4, ecCodewords: 6, valid: true},
	},
	{ // M3
		Low:    {dataCodewords: 11, ecCodewords: 6, valid: true},
		Medium: {dataCodewords: 9, ecCodewords: 8, valid: true},
	},
	{ // M4
		Low:      {dataCodewords: 16, ecCodewords: 8, valid: true},
		Medium:   {dataCodewords: 14, ecCodewords: 10, valid: true},
		Quartile: {dataCodewords: 10, ecCodewords: 14, valid: true},
	},
}

// microSymbolNumber assigns the 3-bit "symbol number" (0..7) used to seed
// Micro QR format info; see formatinfo.go.
var microSymbolNumber = [4][4]uint32{
	{Low: 0},
	{Low: 1, Medium: 2},
	{Low: 3, Medium: 4},
	{Low: 5, Medium: 6, Quartile: 7},
}

// microECInfoFor returns the codeword split for v at ec, and false if the
// combination is not legal (callers should have already validated via
// Version.validateEcLevel).
func microECInfoFor(v Version, ec EcLevel) (microECInfo, bool) {
	info := microECTable[v.micro-1][ec]
	return info, info.valid
}
