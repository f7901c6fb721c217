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

// Package listing prints assembled code next to the source that produced it.
package listing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lassandro/irisc/pkg/assembler"
	"github.com/lassandro/irisc/pkg/encoding"
)

const (
	bold  = "\033[1m"
	faint = "\033[1;30m"
	reset = "\033[0m"
)

var gutter = strings.Repeat("~", 12) + " " + strings.Repeat("~", 8)

// Write prints one row per emitted word: its address, the word in hex and
// the source line it came from. Lines that emit nothing are printed under a
// placeholder gutter, as are the extra words of pseudo-instructions.
// symtable must be the one filled while assembling code.
func Write(
	w io.Writer,
	code []byte,
	base uint32,
	source string,
	symtable *assembler.SymTable,
	color bool,
) error {
	if symtable == nil {
		return errors.New("Listing requires a symbol table")
	}

	out := bufio.NewWriter(w)

	style := func(escape, text string) string {
		if !color {
			return text
		}

		return escape + text + reset
	}

	// Byte offset of a source line -> addresses of the words it emitted.
	lines := make(map[int64][]uint32)

	for addr, offset := range symtable.Symbols {
		lines[offset] = append(lines[offset], addr)
	}

	for _, addrs := range lines {
		slices.Sort(addrs)
	}

	var offset int64

	for _, raw := range strings.Split(source, "\n") {
		text := strings.TrimSuffix(raw, "\r")
		addrs := lines[offset]

		if len(addrs) == 0 {
			fmt.Fprintf(out, "%s %s\n", style(faint, gutter), text)
		}

		for i, addr := range addrs {
			index := int(addr - base)

			if index+assembler.WORD_SIZE > len(code) {
				return fmt.Errorf("Symbol %#08x outside of assembled code", addr)
			}

			row := style(bold, fmt.Sprintf("[0x%08x]", addr))
			word := fmt.Sprintf("%08x", encoding.Word(code, index))

			if i == 0 {
				fmt.Fprintf(out, "%s %s %s\n", row, word, text)
			} else {
				fmt.Fprintf(out, "%s %s %s\n", row, word, style(faint, "~"))
			}
		}

		offset += int64(len(raw) + 1)
	}

	return out.Flush()
}
