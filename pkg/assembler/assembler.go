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

// Package assembler translates IRISC assembly into big-endian machine words.
//
// Assembly runs in two passes over the same parsed program. A LabelSink
// records the address of every label, then an OutputSink seeded with that
// table resolves references and renders the words.
package assembler

import (
	"maps"
)

// Assemble parses source and assembles it at base, returning the machine
// code and the label table.
func Assemble(base uint32, source string) ([]byte, Labels, error) {
	return AssembleSource(base, source, nil)
}

// AssembleSource is Assemble that additionally records debug symbols into
// symtable when it is non-nil.
func AssembleSource(base uint32, source string, symtable *SymTable) ([]byte, Labels, error) {
	program, err := Parse(source)

	if err != nil {
		return nil, nil, err
	}

	return AssembleProgram(base, program, symtable)
}

func AssembleProgram(base uint32, program []Instruction, symtable *SymTable) ([]byte, Labels, error) {
	discovery := NewLabelSink(base)

	if err := Run(discovery, program); err != nil {
		return nil, nil, err
	}

	emission := NewOutputSink(base, discovery.Labels)
	emission.SymTable = symtable

	if err := Run(emission, program); err != nil {
		return nil, nil, err
	}

	if symtable != nil {
		maps.Copy(symtable.Labels, emission.Labels)
	}

	return emission.Output, emission.Labels, nil
}
