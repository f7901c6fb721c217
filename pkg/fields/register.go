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

import (
	"strconv"
	"strings"
)

// General purpose register r0..r31. r0 is also spelled "zero".
type Reg uint8

func NewReg(n uint64) (Reg, error) {
	if n >= RegisterCount {
		return 0, &InvalidRegisterError{"r" + strconv.FormatUint(n, 10)}
	}

	return Reg(n), nil
}

func ParseReg(s string) (Reg, error) {
	if s == RegisterZero {
		return 0, nil
	}

	digits, ok := strings.CutPrefix(s, "r")

	if !ok || digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, &InvalidRegisterError{s}
	}

	n, err := strconv.ParseUint(digits, 10, 64)

	if err != nil {
		return 0, &InvalidRegisterError{s}
	}

	if _, err := NewReg(n); err != nil {
		return 0, &InvalidRegisterError{s}
	}

	return Reg(n), nil
}

func (r Reg) Bits() uint32 {
	return Uimm{RegWidth, 0, uint64(r)}.Bits()
}

// Destination register slot, bits 20..16.
type Rd Reg

// Source register slot, bits 25..21.
type Rs Reg

// Second source register slot, bits 15..11.
type Rt Reg

func ParseRd(s string) (Rd, error) {
	r, err := ParseReg(s)
	return Rd(r), err
}

func ParseRs(s string) (Rs, error) {
	r, err := ParseReg(s)
	return Rs(r), err
}

func ParseRt(s string) (Rt, error) {
	r, err := ParseReg(s)
	return Rt(r), err
}

func (r Rd) Bits() uint32 {
	return Reg(r).Bits() << RdOffset
}

func (r Rs) Bits() uint32 {
	return Reg(r).Bits() << RsOffset
}

func (r Rt) Bits() uint32 {
	return Reg(r).Bits() << RtOffset
}
