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

package params

import (
	"fmt"
)

// Named set of candidate values. Values are kept in the order they were
// produced and may repeat.
type Set struct {
	Name   string
	Values []uint64
}

// One row of a product: every parameter bound to a single value.
type Assignment map[string]uint64

type ParameterError struct {
	Text string
	Err  error
}

func (err *ParameterError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("Invalid parameter '%s'\n\twant:name=values", err.Text)
	}

	return fmt.Sprintf("Invalid parameter '%s': %v", err.Text, err.Err)
}

func (err *ParameterError) Unwrap() error {
	return err.Err
}

type InvalidNumberError struct {
	Text string
	Err  error
}

func (err *InvalidNumberError) Error() string {
	return fmt.Sprintf("Invalid number '%s': %v", err.Text, err.Err)
}

func (err *InvalidNumberError) Unwrap() error {
	return err.Err
}

type UnknownGeneratorError struct {
	Name string
}

func (err *UnknownGeneratorError) Error() string {
	return fmt.Sprintf(
		"Unknown generator '%s'\n\twant:rand8, rand16, rand32, rand64 or bits",
		err.Name,
	)
}

type InvalidCountError struct {
	Generator string
	Count     uint64
	Limit     uint64
}

func (err *InvalidCountError) Error() string {
	return fmt.Sprintf(
		"Invalid count for generator '%s'\n\twant:<=%d\n\thave:%d",
		err.Generator,
		err.Limit,
		err.Count,
	)
}

type RangeTooLargeError struct {
	Low  uint64
	High uint64
}

func (err *RangeTooLargeError) Error() string {
	return fmt.Sprintf(
		"Range %#x..%#x is too large\n\twant:<=%d values\n\thave:%d",
		err.Low,
		err.High,
		MaxRangeSize,
		err.High-err.Low,
	)
}
