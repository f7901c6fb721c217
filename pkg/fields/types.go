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
	"fmt"
)

type OutOfRangeError struct {
	Width  uint
	Signed bool
	Value  string
}

func (err *OutOfRangeError) Error() string {
	if err.Signed {
		return fmt.Sprintf(
			"Immediate %s exceeds %d-bit signed range [%d, %d]",
			err.Value,
			err.Width,
			-(int64(1) << (err.Width - 1)),
			(int64(1)<<(err.Width-1))-1,
		)
	}

	return fmt.Sprintf(
		"Immediate %s exceeds %d-bit unsigned range [0, %#x]",
		err.Value,
		err.Width,
		(uint64(1)<<err.Width)-1,
	)
}

type InvalidNumberError struct {
	Text string
}

func (err *InvalidNumberError) Error() string {
	return fmt.Sprintf("Invalid numeric literal '%s'", err.Text)
}

type InvalidRegisterError struct {
	Text string
}

func (err *InvalidRegisterError) Error() string {
	return fmt.Sprintf("Invalid register identifier '%s'", err.Text)
}

type MisalignedOffsetError struct {
	Offset uint64
	Align  uint64
}

func (err *MisalignedOffsetError) Error() string {
	return fmt.Sprintf(
		"Offset %#x is not a multiple of %d", err.Offset, err.Align,
	)
}

type InvalidLabelError struct {
	Text string
}

func (err *InvalidLabelError) Error() string {
	return fmt.Sprintf("Invalid label name '%s'", err.Text)
}
