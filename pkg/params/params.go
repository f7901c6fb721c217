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

// Package params parses parameter value sets and enumerates their cartesian
// product.
//
// A value set is a comma-separated list of terms:
//
//	42, -1, 0x10         literals (negative values wrap to two's complement)
//	0..8                 half-open range, computed modulo 2^64
//	rand16:4             four independent random draws of 16 bits
//	bits:3               one-hot values 1, 2, 4
package params

import (
	"math/rand"
	"strings"

	"github.com/lassandro/irisc/pkg/encoding"
)

// ParseNumber decodes a decimal or 0x-prefixed hexadecimal literal. A single
// leading '-' negates the value in two's complement; the magnitude of a
// negative literal must fit in 63 bits.
func ParseNumber(s string) (uint64, error) {
	var value uint64
	var err error

	if strings.HasPrefix(s, "-") {
		var signed int64
		signed, err = encoding.DecodeInt(s)
		value = uint64(signed)
	} else {
		value, err = encoding.DecodeUint(s)
	}

	if err != nil {
		return 0, &InvalidNumberError{s, err}
	}

	return value, nil
}

// ParseValues expands a comma-separated value set into its values, in term
// order.
func ParseValues(expr string) ([]uint64, error) {
	var values []uint64

	for _, field := range strings.Split(expr, TERM_SEPARATOR) {
		term := strings.TrimSpace(field)

		expanded, err := parseTerm(term)

		if err != nil {
			return nil, err
		}

		values = append(values, expanded...)
	}

	return values, nil
}

// ParseParameter splits "name=values" and expands the value set.
func ParseParameter(s string) (Set, error) {
	name, expr, found := strings.Cut(s, PARAMETER_SEPARATOR)
	name = strings.TrimSpace(name)

	if !found || name == "" {
		return Set{}, &ParameterError{Text: s}
	}

	values, err := ParseValues(expr)

	if err != nil {
		return Set{}, &ParameterError{s, err}
	}

	return Set{Name: name, Values: values}, nil
}

func parseTerm(term string) ([]uint64, error) {
	if low, high, found := strings.Cut(term, RANGE_SEPARATOR); found {
		return parseRange(low, high)
	}

	if name, count, found := strings.Cut(term, GENERATOR_SEPARATOR); found {
		return generate(strings.TrimSpace(name), count)
	}

	value, err := ParseNumber(term)

	if err != nil {
		return nil, err
	}

	return []uint64{value}, nil
}

func parseRange(lowText, highText string) ([]uint64, error) {
	low, err := ParseNumber(strings.TrimSpace(lowText))

	if err != nil {
		return nil, err
	}

	high, err := ParseNumber(strings.TrimSpace(highText))

	if err != nil {
		return nil, err
	}

	// Unsigned subtraction, so ranges may cross zero.
	size := high - low

	if size > MaxRangeSize {
		return nil, &RangeTooLargeError{low, high}
	}

	values := make([]uint64, 0, size)

	for value := low; value != high; value++ {
		values = append(values, value)
	}

	return values, nil
}

func generate(name, countText string) ([]uint64, error) {
	count, err := ParseNumber(strings.TrimSpace(countText))

	if err != nil {
		return nil, err
	}

	if name == GENERATOR_BITS {
		if count > 64 {
			return nil, &InvalidCountError{name, count, 64}
		}

		values := make([]uint64, count)

		for i := range values {
			values[i] = 1 << i
		}

		return values, nil
	}

	width, known := randWidths[name]

	if !known {
		return nil, &UnknownGeneratorError{name}
	}

	if count > MaxRangeSize {
		return nil, &InvalidCountError{name, count, MaxRangeSize}
	}

	values := make([]uint64, count)

	for i := range values {
		values[i] = encoding.Mask(rand.Uint64(), width)
	}

	return values, nil
}
