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
	"errors"
	"math"
	"math/bits"
)

// Stops Each without reporting an error.
var ErrStop = errors.New("stop iteration")

// Count returns the number of assignments in the product of sets, saturating
// at math.MaxUint64.
func Count(sets []Set) uint64 {
	var total uint64 = 1

	for _, set := range sets {
		hi, lo := bits.Mul64(total, uint64(len(set.Values)))

		if hi != 0 {
			return math.MaxUint64
		}

		total = lo
	}

	return total
}

// Each calls fn once per assignment of the product of sets. The first set
// varies slowest. No sets yields a single empty assignment; any empty set
// yields none. Iteration stops at the first error from fn, which is returned
// unless it is ErrStop.
//
// Every call receives a fresh Assignment.
func Each(sets []Set, fn func(Assignment) error) error {
	for _, set := range sets {
		if len(set.Values) == 0 {
			return nil
		}
	}

	indices := make([]int, len(sets))

	for {
		row := make(Assignment, len(sets))

		for i, set := range sets {
			row[set.Name] = set.Values[indices[i]]
		}

		if err := fn(row); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return err
		}

		// Advance the odometer, last set first.
		digit := len(sets) - 1

		for ; digit >= 0; digit-- {
			indices[digit]++

			if indices[digit] < len(sets[digit].Values) {
				break
			}

			indices[digit] = 0
		}

		if digit < 0 {
			return nil
		}
	}
}

// Product materializes every assignment of sets in Each order.
func Product(sets []Set) []Assignment {
	rows := make([]Assignment, 0, min(Count(sets), MaxRangeSize))

	Each(sets, func(row Assignment) error {
		rows = append(rows, row)
		return nil
	})

	return rows
}
