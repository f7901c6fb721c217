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

package encoding_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lassandro/irisc/pkg/encoding"
)

func TestDecodeUint(t *testing.T) {
	tests := []struct {
		Input string
		Want  uint64
		Err   error
	}{
		{"0", 0, nil},
		{"1234", 1234, nil},
		{"0x1234", 0x1234, nil},
		{"0xffffffffffffffff", math.MaxUint64, nil},
		{"18446744073709551616", 0, encoding.ErrMagnitude},
		{"0x", 0, encoding.ErrInvalidNumber},
		{"", 0, encoding.ErrInvalidNumber},
		{"-1", 0, encoding.ErrInvalidNumber},
		{"+1", 0, encoding.ErrInvalidNumber},
		{"12ab", 0, encoding.ErrInvalidNumber},
		{"0X10", 0, encoding.ErrInvalidNumber},
	}

	for _, test := range tests {
		have, err := encoding.DecodeUint(test.Input)

		if !errors.Is(err, test.Err) {
			t.Fatalf(
				"Decode error mismatch for %q\n\twant:%v\n\thave:%v",
				test.Input, test.Err, err,
			)
		}

		if have != test.Want {
			t.Fatalf(
				"Decode mismatch for %q\n\twant:%#x\n\thave:%#x",
				test.Input, test.Want, have,
			)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		Input string
		Want  int64
		Err   error
	}{
		{"-10", -10, nil},
		{"-0x10", -16, nil},
		{"0x7fffffffffffffff", math.MaxInt64, nil},
		{"-0x7fffffffffffffff", -math.MaxInt64, nil},
		{"-0x8000000000000000", 0, encoding.ErrMagnitude},
		{"--1", 0, encoding.ErrInvalidNumber},
		{"-", 0, encoding.ErrInvalidNumber},
	}

	for _, test := range tests {
		have, err := encoding.DecodeInt(test.Input)

		if !errors.Is(err, test.Err) {
			t.Fatalf(
				"Decode error mismatch for %q\n\twant:%v\n\thave:%v",
				test.Input, test.Err, err,
			)
		}

		if have != test.Want {
			t.Fatalf(
				"Decode mismatch for %q\n\twant:%d\n\thave:%d",
				test.Input, test.Want, have,
			)
		}
	}
}

func TestSignExtend(t *testing.T) {
	if have := encoding.SignExtend(0x7f6, 11); have != -10 {
		t.Fatalf("Sign extension mismatch\n\twant:-10\n\thave:%d", have)
	}

	if have := encoding.SignExtend(0x3f6, 11); have != 0x3f6 {
		t.Fatalf("Sign extension mismatch\n\twant:%d\n\thave:%d", 0x3f6, have)
	}

	if have := encoding.Mask(math.MaxUint64, 64); have != math.MaxUint64 {
		t.Fatalf("Mask mismatch\n\twant:%#x\n\thave:%#x", uint64(math.MaxUint64), have)
	}
}

func TestPutWord(t *testing.T) {
	buf := encoding.PutWord(nil, 0x12345678)
	buf = encoding.PutWord(buf, 0xdeadbeef)

	if len(buf) != 8 || buf[0] != 0x12 || buf[3] != 0x78 || buf[4] != 0xde {
		t.Fatalf("Big-endian layout mismatch: % x", buf)
	}

	if have := encoding.Word(buf, 4); have != 0xdeadbeef {
		t.Fatalf("Word mismatch\n\twant:0xdeadbeef\n\thave:%#x", have)
	}
}
