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

package listing_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/lassandro/irisc/pkg/assembler"
	"github.com/lassandro/irisc/pkg/listing"
)

func TestWrite(t *testing.T) {
	source := "# entry point\nlbl start\nset32 r1, 0x12345678\nret.d"
	symtable := assembler.NewSymTable("")

	code, _, err := assembler.AssembleSource(0x100, source, symtable)

	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer

	if err := listing.Write(&buffer, code, 0x100, source, symtable, false); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"~~~~~~~~~~~~ ~~~~~~~~ # entry point",
		"~~~~~~~~~~~~ ~~~~~~~~ lbl start",
		"[0x00000100] 20011234 set32 r1, 0x12345678",
		"[0x00000104] 24215678 ~",
		"[0x00000108] fc00002d ret.d",
	}

	have := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")

	if diff := deep.Equal(have, want); diff != nil {
		t.Fatalf("Listing mismatch: %v\n%s", diff, buffer.String())
	}
}

func TestWriteColor(t *testing.T) {
	source := "ret.d"
	symtable := assembler.NewSymTable("")

	code, _, err := assembler.AssembleSource(0, source, symtable)

	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer

	if err := listing.Write(&buffer, code, 0, source, symtable, true); err != nil {
		t.Fatal(err)
	}

	want := "\033[1m[0x00000000]\033[0m fc00002d ret.d\n"

	if have := buffer.String(); have != want {
		t.Fatalf("Colored listing mismatch\n\twant:%q\n\thave:%q", want, have)
	}
}

func TestWriteMismatchedCode(t *testing.T) {
	symtable := assembler.NewSymTable("")
	symtable.Symbols[0x10] = 0

	var buffer bytes.Buffer

	if err := listing.Write(&buffer, []byte{0, 0, 0, 0}, 0, "ret.d", symtable, false); err == nil {
		t.Fatalf("Symbol outside of code produced no error\n%s", buffer.String())
	}
}

func TestWriteWithoutSymTable(t *testing.T) {
	var buffer bytes.Buffer

	if err := listing.Write(&buffer, []byte{0xfc, 0, 0, 0x2d}, 0, "ret.d", nil, false); err == nil {
		t.Fatalf("Missing symbol table produced no error\n%s", buffer.String())
	}
}

func TestWriteGutterAlignment(t *testing.T) {
	source := "lbl top\nret.d"
	symtable := assembler.NewSymTable("")

	code, _, err := assembler.AssembleSource(0xfffffff8, source, symtable)

	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer

	if err := listing.Write(&buffer, code, 0xfffffff8, source, symtable, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")

	if len(lines) != 2 || strings.Index(lines[0], "lbl") != strings.Index(lines[1], "ret.d") {
		t.Fatalf("Source column is not aligned\n%s", buffer.String())
	}
}
