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

package encoding

import (
	"encoding/binary"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("Invalid numeric literal")
var ErrMagnitude = errors.New("Numeric literal magnitude out of range")

// Decodes a hexadecimal string in the format 0xFFFF
func DecodeHex(s string) (uint64, error) {
	digits, ok := strings.CutPrefix(s, "0x")

	if !ok || digits == "" {
		return 0, ErrInvalidNumber
	}

	return decodeDigits(digits, 16)
}

// Decodes an unsigned decimal or hexadecimal string: 123, 0x7B
func DecodeUint(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") {
		return DecodeHex(s)
	}

	return decodeDigits(s, 10)
}

// Decodes a signed decimal or hexadecimal string: -123, 123, -0x7B, 0x7B.
// The magnitude must fit in 63 bits before it is negated.
func DecodeInt(s string) (int64, error) {
	magnitude, negative := strings.CutPrefix(s, "-")

	result, err := DecodeUint(magnitude)

	if err != nil {
		return 0, err
	}

	if result > math.MaxInt64 {
		return 0, ErrMagnitude
	}

	if negative {
		return -int64(result), nil
	}

	return int64(result), nil
}

func decodeDigits(s string, base int) (uint64, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, ErrInvalidNumber
	}

	result, err := strconv.ParseUint(s, base, 64)

	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrMagnitude
		}

		return 0, ErrInvalidNumber
	}

	return result, nil
}

// Mask keeps the low bitcount bits of value. A bitcount of 64 or more keeps
// every bit.
func Mask(value uint64, bitcount uint) uint64 {
	if bitcount >= 64 {
		return value
	}

	return value & ((1 << bitcount) - 1)
}

func SignExtend(value uint64, bitcount uint) int64 {
	if bitcount == 0 || bitcount >= 64 {
		return int64(value)
	}

	value = Mask(value, bitcount)

	if (value>>(bitcount-1))&0x1 == 1 {
		value |= math.MaxUint64 << bitcount
	}

	return int64(value)
}

// Appends word to dst in big-endian byte order
func PutWord(dst []byte, word uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, word)
}

// Reads the big-endian word at byte offset i of src
func Word(src []byte, i int) uint32 {
	return binary.BigEndian.Uint32(src[i : i+4])
}
