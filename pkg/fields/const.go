// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package fields

// Field placement within a 32-bit instruction word.
//
// OP   |opcode     |rs       |rd       |rt       |                     |
// ---- [31 ...   26|25 ... 21|20 ... 16|15 ... 11|10 ...              0]
const (
	OpcodeOffset = 26
	RsOffset     = 21
	RdOffset     = 16
	RtOffset     = 11
	JmpopOffset  = 24
	CondOffset   = 16
	AlignShift   = 2
)

const (
	OpcodeWidth = 6
	RegWidth    = 5
	FunctWidth  = 11
	CondWidth   = 5
	SubOpWidth  = 2
	JmpopWidth  = 1

	// Values of this width are accepted without a range check.
	UncheckedWidth = 64
)

const (
	RegisterCount = 1 << RegWidth
	RegisterZero  = "zero"
)
