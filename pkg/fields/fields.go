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

// Package fields models the typed operands of an IRISC instruction word.
//
// Every operand renders itself as a 32-bit fragment already shifted to its
// field offset. Fragments are joined with Combine, which assumes the
// operands occupy disjoint bit ranges.
package fields

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/lassandro/irisc/pkg/encoding"
)

type Bits interface {
	Bits() uint32
}

// Word is a fragment whose bits are already in place.
type Word uint32

func (w Word) Bits() uint32 {
	return uint32(w)
}

// Or is the bitwise union of two fragments.
type Or struct {
	A Bits
	B Bits
}

func (o Or) Bits() uint32 {
	return o.A.Bits() | o.B.Bits()
}

func Combine(parts ...Bits) Bits {
	if len(parts) == 0 {
		return Word(0)
	}

	result := parts[0]

	for _, part := range parts[1:] {
		result = Or{result, part}
	}

	return result
}

// Unsigned immediate of Width bits placed at Offset.
type Uimm struct {
	Width  uint
	Offset uint
	Value  uint64
}

func NewUimm(width uint, value uint64) (Uimm, error) {
	if width < UncheckedWidth && value >= uint64(1)<<width {
		return Uimm{}, &OutOfRangeError{
			Width: width,
			Value: strconv.FormatUint(value, 10),
		}
	}

	return Uimm{Width: width, Value: value}, nil
}

func ParseUimm(width uint, s string) (Uimm, error) {
	value, err := encoding.DecodeUint(s)

	if errors.Is(err, encoding.ErrMagnitude) {
		return Uimm{}, &OutOfRangeError{Width: width, Value: s}
	} else if err != nil {
		return Uimm{}, &InvalidNumberError{s}
	}

	return NewUimm(width, value)
}

// At returns u moved to the given bit offset.
func (u Uimm) At(offset uint) Uimm {
	u.Offset = offset
	return u
}

func (u Uimm) Bits() uint32 {
	return uint32(encoding.Mask(u.Value, u.Width)) << u.Offset
}

// Chunk returns the 16-bit slice of u starting at bit 16*index.
func (u Uimm) Chunk(index uint) Uimm {
	return Uimm{Width: 16, Value: (u.Value >> (16 * index)) & 0xFFFF}
}

// Two's complement immediate of Width bits placed at Offset.
type Simm struct {
	Width  uint
	Offset uint
	Value  int64
}

func NewSimm(width uint, value int64) (Simm, error) {
	if width < UncheckedWidth {
		if encoding.SignExtend(uint64(value), width) != value {
			return Simm{}, &OutOfRangeError{
				Width:  width,
				Signed: true,
				Value:  strconv.FormatInt(value, 10),
			}
		}
	}

	return Simm{Width: width, Value: value}, nil
}

func ParseSimm(width uint, s string) (Simm, error) {
	value, err := encoding.DecodeInt(s)

	if errors.Is(err, encoding.ErrMagnitude) {
		return Simm{}, &OutOfRangeError{Width: width, Signed: true, Value: s}
	} else if err != nil {
		return Simm{}, &InvalidNumberError{s}
	}

	return NewSimm(width, value)
}

func (s Simm) At(offset uint) Simm {
	s.Offset = offset
	return s
}

func (s Simm) Bits() uint32 {
	return uint32(encoding.Mask(uint64(s.Value), s.Width)) << s.Offset
}

// Primary operation selector, bits 31..26.
type Opcode uint8

func ParseOpcode(s string) (Opcode, error) {
	u, err := ParseUimm(OpcodeWidth, s)
	return Opcode(u.Value), err
}

func (op Opcode) Bits() uint32 {
	return Uimm{OpcodeWidth, OpcodeOffset, uint64(op)}.Bits()
}

// Secondary operation selector of register-form ALU instructions.
type Funct uint16

func ParseFunct(s string) (Funct, error) {
	u, err := ParseUimm(FunctWidth, s)
	return Funct(u.Value), err
}

func (f Funct) Bits() uint32 {
	return Uimm{FunctWidth, 0, uint64(f)}.Bits()
}

// Width/variant selector of memory instructions, bits 1..0.
type SubOp uint8

func (s SubOp) Bits() uint32 {
	return Uimm{SubOpWidth, 0, uint64(s)}.Bits()
}

// Compare operation or bit selector of conditional branches, bits 20..16.
type Cond uint8

func ParseCond(s string) (Cond, error) {
	u, err := ParseUimm(CondWidth, s)
	return Cond(u.Value), err
}

func (c Cond) Bits() uint32 {
	return Uimm{CondWidth, CondOffset, uint64(c)}.Bits()
}

// Jump/call discriminator, bit 24.
type Jmpop uint8

const (
	JmpopCall Jmpop = 0
	JmpopJump Jmpop = 1
)

func (j Jmpop) Bits() uint32 {
	return Uimm{JmpopWidth, JmpopOffset, uint64(j)}.Bits()
}

// Word-aligned byte offset stored as offset>>2 in Width bits at bit 2.
type AlignedOffset struct {
	Width uint
	Words uint64
}

func NewAlignedOffset(width uint, offset uint64) (AlignedOffset, error) {
	if offset%(1<<AlignShift) != 0 {
		return AlignedOffset{}, &MisalignedOffsetError{offset, 1 << AlignShift}
	}

	words, err := NewUimm(width, offset>>AlignShift)

	if err != nil {
		return AlignedOffset{}, err
	}

	return AlignedOffset{Width: width, Words: words.Value}, nil
}

func ParseAlignedOffset(width uint, s string) (AlignedOffset, error) {
	u, err := ParseUimm(UncheckedWidth, s)

	if err != nil {
		return AlignedOffset{}, err
	}

	return NewAlignedOffset(width, u.Value)
}

func ParseOff14(s string) (AlignedOffset, error) {
	return ParseAlignedOffset(14, s)
}

func ParseOff9(s string) (AlignedOffset, error) {
	return ParseAlignedOffset(9, s)
}

func (o AlignedOffset) ByteOffset() uint64 {
	return o.Words << AlignShift
}

func (o AlignedOffset) Bits() uint32 {
	return Uimm{o.Width, AlignShift, o.Words}.Bits()
}

// Signed 16-bit byte offset of a byte store. Bits 15..11 of the offset sit
// in the rd slot (20..16), bits 10..0 below rt.
type StoreOffset struct {
	Simm
}

func ParseStoreOffset(s string) (StoreOffset, error) {
	simm, err := ParseSimm(16, s)
	return StoreOffset{simm}, err
}

func (o StoreOffset) Bits() uint32 {
	raw := o.Simm.At(0).Bits()
	return ((raw>>11)&0x1F)<<RdOffset | raw&0x7FF
}

// Symbolic address operand.
type Label string

func ParseLabel(s string) (Label, error) {
	if s == "" || strings.ContainsAny(s, ",#") ||
		strings.IndexFunc(s, unicode.IsSpace) != -1 {
		return "", &InvalidLabelError{s}
	}

	return Label(s), nil
}
