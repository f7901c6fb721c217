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

const (
	PARAMETER_SEPARATOR = "="
	TERM_SEPARATOR      = ","
	RANGE_SEPARATOR     = ".."
	GENERATOR_SEPARATOR = ":"
)

const (
	GENERATOR_RAND8  = "rand8"
	GENERATOR_RAND16 = "rand16"
	GENERATOR_RAND32 = "rand32"
	GENERATOR_RAND64 = "rand64"
	GENERATOR_BITS   = "bits"
)

// Upper bound on the values a single range or generator term may produce.
const MaxRangeSize = 1 << 24

var randWidths = map[string]uint{
	GENERATOR_RAND8:  8,
	GENERATOR_RAND16: 16,
	GENERATOR_RAND32: 32,
	GENERATOR_RAND64: 64,
}
