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

package main

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"github.com/lassandro/irisc/pkg/assembler"
)

func TestWriteSymTable(t *testing.T) {
	symtable := assembler.NewSymTable("/src/prog.s")

	if _, _, err := assembler.AssembleSource(0x40, "lbl entry\nret.d", symtable); err != nil {
		t.Fatal(err)
	}

	outfile := filepath.Join(t.TempDir(), "prog.bin")

	if err := writeSymTable(outfile, symtable); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(filepath.Join(filepath.Dir(outfile), "prog.irdb"))

	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	var have assembler.SymTable

	if err := gob.NewDecoder(file).Decode(&have); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(&have, symtable); diff != nil {
		t.Fatalf("Symbol table mismatch: %v", diff)
	}
}
