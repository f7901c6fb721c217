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

// Package cli holds the pieces shared by the irisc command line tools:
// address flags, input selection and diagnostics.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/lassandro/irisc/pkg/assembler"
	"github.com/lassandro/irisc/pkg/encoding"
)

const StdinName = "<stdin>"

// Load address flag accepting decimal or 0x-prefixed hexadecimal values.
type AddressFlag uint32

func (addr *AddressFlag) String() string {
	return fmt.Sprintf("%#x", uint32(*addr))
}

func (addr *AddressFlag) Set(s string) error {
	value, err := encoding.DecodeUint(s)

	if err != nil {
		return err
	}

	if value > math.MaxUint32 {
		return fmt.Errorf("Address %#x exceeds 32 bits", value)
	}

	*addr = AddressFlag(value)

	return nil
}

// IsTerminal reports whether file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// SetLogPrefix prefixes log output with name, in bold when stderr is a
// terminal.
func SetLogPrefix(name string) {
	if IsTerminal(os.Stderr) {
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m ", name))
	} else {
		log.SetPrefix(name + ": ")
	}
}

// ReadInput reads the file named by the single argument, or stdin when no
// argument is given and stdin is not a terminal.
func ReadInput(args []string) (name string, source string, err error) {
	var input io.Reader

	switch {
	case len(args) == 1:
		file, err := os.Open(args[0])

		if err != nil {
			return "", "", err
		}

		defer file.Close()

		if stat, err := file.Stat(); err != nil {
			return "", "", err
		} else if stat.IsDir() {
			return "", "", fmt.Errorf("%s is a directory", args[0])
		}

		name = args[0]
		input = file

	case len(args) == 0 && !IsTerminal(os.Stdin):
		name = StdinName
		input = os.Stdin

	default:
		return "", "", errors.New("Expected exactly one input file")
	}

	data, err := io.ReadAll(input)

	if err != nil {
		return "", "", err
	}

	return name, string(data), nil
}

// OutputName replaces the extension of name with ext, falling back to
// "out"+ext for stdin.
func OutputName(name, ext string) string {
	if name == StdinName {
		return "out" + ext
	}

	base := filepath.Base(name)

	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// Diagnose formats err for the terminal. Errors that carry a source position
// are followed by the offending line with the token underlined.
func Diagnose(err error, source string, color bool) []string {
	var errs assembler.SyntaxErrors

	if !errors.As(err, &errs) {
		errs = assembler.SyntaxErrors{err}
	}

	messages := make([]string, 0, len(errs))

	for _, err := range errs {
		var tokenErr assembler.TokenError

		if !errors.As(err, &tokenErr) {
			messages = append(messages, err.Error())
			continue
		}

		cursor := tokenErr.GetPosition()
		line := sourceLine(source, cursor.LineByte)

		underline := strings.Repeat(" ", max(cursor.Column-1, 0)) +
			"^" + strings.Repeat("~", max(int(cursor.Size)-1, 0))

		if color {
			underline = "\033[31m" + underline + "\033[0m"
		}

		messages = append(messages, fmt.Sprintf("%s\n%s\n%s", err, line, underline))
	}

	return messages
}

func sourceLine(source string, offset int64) string {
	if offset < 0 || offset > int64(len(source)) {
		return ""
	}

	line, _, _ := strings.Cut(source[offset:], "\n")

	return strings.TrimSuffix(line, "\r")
}
