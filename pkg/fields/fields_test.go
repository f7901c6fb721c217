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

package fields_test

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lassandro/irisc/pkg/encoding"
	"github.com/lassandro/irisc/pkg/fields"
)

func TestUimmRange(t *testing.T) {
	for width := uint(1); width < 32; width++ {
		for _, value := range []uint64{0, 1, (1 << width) - 1, (1 << width) / 3} {
			u, err := fields.NewUimm(width, value)

			if err != nil {
				t.Fatalf("Uimm%d(%#x) rejected: %v", width, value, err)
			}

			if have := u.Bits(); uint64(have) != value {
				t.Fatalf(
					"Uimm%d render mismatch\n\twant:%#x\n\thave:%#x",
					width, value, have,
				)
			}
		}

		var rangeErr *fields.OutOfRangeError

		if _, err := fields.NewUimm(width, 1<<width); !errors.As(err, &rangeErr) {
			t.Fatalf(
				"Uimm%d(%#x) error mismatch\n\twant:%T\n\thave:%v",
				width, uint64(1)<<width, rangeErr, err,
			)
		}
	}
}

func TestUimmUnchecked(t *testing.T) {
	u, err := fields.ParseUimm(fields.UncheckedWidth, "0xffffffffffffffff")

	if err != nil {
		t.Fatal(err)
	}

	if u.Value != math.MaxUint64 {
		t.Fatalf("Uimm64 mismatch\n\twant:%#x\n\thave:%#x", uint64(math.MaxUint64), u.Value)
	}

	if have := u.Chunk(3).Bits(); have != 0xFFFF {
		t.Fatalf("Chunk mismatch\n\twant:0xffff\n\thave:%#x", have)
	}
}

func TestSimmRange(t *testing.T) {
	for width := uint(2); width <= 32; width++ {
		low := -(int64(1) << (width - 1))
		high := (int64(1) << (width - 1)) - 1

		for _, value := range []int64{low, -1, 0, 1, high} {
			s, err := fields.NewSimm(width, value)

			if err != nil {
				t.Fatalf("Simm%d(%d) rejected: %v", width, value, err)
			}

			have := encoding.SignExtend(uint64(s.Bits()), width)

			if have != value {
				t.Fatalf(
					"Simm%d round trip mismatch\n\twant:%d\n\thave:%d (%s)",
					width, value, have, spew.Sdump(s),
				)
			}
		}

		for _, value := range []int64{low - 1, high + 1} {
			var rangeErr *fields.OutOfRangeError

			if _, err := fields.NewSimm(width, value); !errors.As(err, &rangeErr) {
				t.Fatalf(
					"Simm%d(%d) error mismatch\n\twant:%T\n\thave:%v",
					width, value, rangeErr, err,
				)
			}
		}
	}
}

func TestSimmPattern(t *testing.T) {
	s, err := fields.ParseSimm(11, "-10")

	if err != nil {
		t.Fatal(err)
	}

	if have := s.Bits(); have != 0x7f6 {
		t.Fatalf("Simm11(-10) mismatch\n\twant:0x7f6\n\thave:%#x", have)
	}

	s, err = fields.ParseSimm(16, "-0x1")

	if err != nil {
		t.Fatal(err)
	}

	if have := s.At(4).Bits(); have != 0xFFFF0 {
		t.Fatalf("Simm16(-1)@4 mismatch\n\twant:0xffff0\n\thave:%#x", have)
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Parse func() error
		Want  interface{}
	}{
		{"uimm letters", func() error {
			_, err := fields.ParseUimm(16, "abc")
			return err
		}, &fields.InvalidNumberError{}},
		{"uimm negative", func() error {
			_, err := fields.ParseUimm(16, "-1")
			return err
		}, &fields.InvalidNumberError{}},
		{"uimm oversized", func() error {
			_, err := fields.ParseUimm(16, "0x10000")
			return err
		}, &fields.OutOfRangeError{}},
		{"uimm huge", func() error {
			_, err := fields.ParseUimm(16, "0x1ffffffffffffffff")
			return err
		}, &fields.OutOfRangeError{}},
		{"simm empty", func() error {
			_, err := fields.ParseSimm(16, "")
			return err
		}, &fields.InvalidNumberError{}},
		{"simm oversized", func() error {
			_, err := fields.ParseSimm(16, "0x8000")
			return err
		}, &fields.OutOfRangeError{}},
		{"simm undersized", func() error {
			_, err := fields.ParseSimm(16, "-32769")
			return err
		}, &fields.OutOfRangeError{}},
		{"opcode", func() error {
			_, err := fields.ParseOpcode("0x40")
			return err
		}, &fields.OutOfRangeError{}},
	}

	for _, test := range tests {
		err := test.Parse()

		switch test.Want.(type) {
		case *fields.InvalidNumberError:
			var want *fields.InvalidNumberError
			if !errors.As(err, &want) {
				t.Fatalf("%s: want:%T have:%v", test.Name, want, err)
			}
		case *fields.OutOfRangeError:
			var want *fields.OutOfRangeError
			if !errors.As(err, &want) {
				t.Fatalf("%s: want:%T have:%v", test.Name, want, err)
			}
		}
	}
}

func TestRegisterOffsets(t *testing.T) {
	tests := []struct {
		Name string
		Bits fields.Bits
		Want uint32
	}{
		{"Rd", fields.Rd(27), 0x001b0000},
		{"Rs", fields.Rs(27), 0x03600000},
		{"Rt", fields.Rt(27), 0x0000d800},
		{"Reg", fields.Reg(27), 0x1b},
		{"Opcode", fields.Opcode(0x3e), 0xf8000000},
		{"Funct", fields.Funct(0x2d), 0x2d},
		{"Jmpop", fields.JmpopJump, 0x01000000},
		{"Cond", fields.Cond(0x1f), 0x001f0000},
		{"SubOp", fields.SubOp(3), 0x3},
	}

	for _, test := range tests {
		if have := test.Bits.Bits(); have != test.Want {
			t.Fatalf(
				"%s encoding mismatch\n\twant:%#08x\n\thave:%#08x",
				test.Name, test.Want, have,
			)
		}
	}
}

func TestParseReg(t *testing.T) {
	valid := map[string]fields.Reg{
		"zero": 0,
		"r0":   0,
		"r5":   5,
		"r31":  31,
	}

	for text, want := range valid {
		have, err := fields.ParseReg(text)

		if err != nil {
			t.Fatalf("ParseReg(%q): %v", text, err)
		}

		if have != want {
			t.Fatalf("ParseReg(%q)\n\twant:%d\n\thave:%d", text, want, have)
		}
	}

	for _, text := range []string{
		"", "r", "r32", "r256", "r18446744073709551616", "x1", "R1", "r-1", "r+1", "rzero", "zero1",
	} {
		var regErr *fields.InvalidRegisterError

		if _, err := fields.ParseReg(text); !errors.As(err, &regErr) {
			t.Fatalf("ParseReg(%q)\n\twant:%T\n\thave:%v", text, regErr, err)
		}
	}
}

func TestNewReg(t *testing.T) {
	if r, err := fields.NewReg(31); err != nil || r != 31 {
		t.Fatalf("NewReg(31)\n\twant:31\n\thave:%d (%v)", r, err)
	}

	var regErr *fields.InvalidRegisterError

	if _, err := fields.NewReg(32); !errors.As(err, &regErr) || regErr.Text != "r32" {
		t.Fatalf("NewReg(32)\n\twant:%T r32\n\thave:%v", regErr, err)
	}
}

func TestSimmBounds(t *testing.T) {
	tests := []struct {
		Width uint
		Value int64
		Fail  bool
	}{
		{16, 32767, false},
		{16, -32768, false},
		{16, 32768, true},
		{16, -32769, true},
		{24, 1<<23 - 1, false},
		{24, -1 << 23, false},
		{24, 1 << 23, true},
		{1, -1, false},
		{1, 1, true},
		{63, math.MinInt64 >> 1, false},
		{63, math.MaxInt64, true},
		{64, math.MinInt64, false},
	}

	for _, test := range tests {
		_, err := fields.NewSimm(test.Width, test.Value)

		var rangeErr *fields.OutOfRangeError

		if test.Fail != errors.As(err, &rangeErr) {
			t.Fatalf("NewSimm(%d, %d)\n\twant:fail=%t\n\thave:%v", test.Width, test.Value, test.Fail, err)
		}
	}
}

func TestAlignedOffset(t *testing.T) {
	off, err := fields.ParseOff14("0x10")

	if err != nil {
		t.Fatal(err)
	}

	if off.Words != 4 || off.ByteOffset() != 0x10 || off.Bits() != 0x10 {
		t.Fatalf("Off14(0x10) mismatch: %s", spew.Sdump(off))
	}

	if off, err = fields.ParseOff9("0x7fc"); err != nil || off.Bits() != 0x7fc {
		t.Fatalf("Off9(0x7fc) mismatch: %v %s", err, spew.Sdump(off))
	}

	var alignErr *fields.MisalignedOffsetError

	for _, text := range []string{"1", "2", "0x13"} {
		if _, err := fields.ParseOff14(text); !errors.As(err, &alignErr) {
			t.Fatalf("Off14(%s)\n\twant:%T\n\thave:%v", text, alignErr, err)
		}
	}

	var rangeErr *fields.OutOfRangeError

	if _, err := fields.ParseOff9("0x800"); !errors.As(err, &rangeErr) {
		t.Fatalf("Off9(0x800)\n\twant:%T\n\thave:%v", rangeErr, err)
	}

	if _, err := fields.ParseOff14("0x10000"); !errors.As(err, &rangeErr) {
		t.Fatalf("Off14(0x10000)\n\twant:%T\n\thave:%v", rangeErr, err)
	}
}

func TestStoreOffset(t *testing.T) {
	tests := []struct {
		Input string
		Want  uint32
	}{
		{"0", 0},
		{"0x7ff", 0x7ff},
		{"0x800", 0x00010000},
		{"-4", 0x001f07fc},
		{"0x7fff", 0x000f07ff},
	}

	for _, test := range tests {
		off, err := fields.ParseStoreOffset(test.Input)

		if err != nil {
			t.Fatal(err)
		}

		if have := off.Bits(); have != test.Want {
			t.Fatalf(
				"StoreOffset(%s) mismatch\n\twant:%#08x\n\thave:%#08x",
				test.Input, test.Want, have,
			)
		}

		if mask := uint32(0x03E0F800); off.Bits()&mask != 0 {
			t.Fatalf("StoreOffset(%s) overlaps rs/rt: %#08x", test.Input, off.Bits())
		}
	}
}

func TestCombine(t *testing.T) {
	rs, _ := fields.ParseRs("r1")
	rd, _ := fields.ParseRd("r2")
	imm, _ := fields.ParseUimm(16, "0xbeef")

	have := fields.Combine(fields.Opcode(0x06), rd, rs, imm).Bits()

	if want := uint32(0x1822beef); have != want {
		t.Fatalf("Combine mismatch\n\twant:%#08x\n\thave:%#08x", want, have)
	}

	if have := fields.Combine().Bits(); have != 0 {
		t.Fatalf("Empty combine mismatch\n\twant:0\n\thave:%#08x", have)
	}

	left := fields.Or{A: fields.Or{A: fields.Opcode(1), B: rd}, B: rs}
	right := fields.Or{A: fields.Opcode(1), B: fields.Or{A: rd, B: rs}}

	if left.Bits() != right.Bits() {
		t.Fatalf("Or is not associative: %#08x != %#08x", left.Bits(), right.Bits())
	}
}

func TestParseLabel(t *testing.T) {
	if have, err := fields.ParseLabel("loop_1"); err != nil || have != "loop_1" {
		t.Fatalf("ParseLabel(loop_1): %q %v", have, err)
	}

	var labelErr *fields.InvalidLabelError

	for _, text := range []string{"", "a b", "a,b", "#x"} {
		if _, err := fields.ParseLabel(text); !errors.As(err, &labelErr) {
			t.Fatalf("ParseLabel(%q)\n\twant:%T\n\thave:%v", text, labelErr, err)
		}
	}
}
