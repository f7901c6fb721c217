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

package assembler

import (
	"fmt"
	"strings"
)

type InstructionType uint

// Position of a token within the assembler source. Line and Column are
// 1-based; LineByte is the byte offset of the start of the line.
type Cursor struct {
	Line     int
	Column   int
	LineByte int64
	Size     int64
	Text     string
}

type Token struct {
	Position Cursor
	Value    string
}

// Label name to resolved address.
type Labels map[string]uint32

// Debug information written alongside a binary. Symbols maps the address of
// every emitted word to the byte offset of the source line it came from.
type SymTable struct {
	Source  string
	Symbols map[uint32]int64
	Labels  map[string]uint32
}

func NewSymTable(source string) *SymTable {
	return &SymTable{
		Source:  source,
		Symbols: make(map[uint32]int64),
		Labels:  make(map[string]uint32),
	}
}

type TokenError interface {
	GetPosition() Cursor
}

func (c Cursor) String() string {
	return fmt.Sprintf("%02d:%02d", c.Line, c.Column)
}

type InvalidNumArgumentsError struct {
	Position Cursor
	Required int
	Received int
}

func (err *InvalidNumArgumentsError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidNumArgumentsError) Error() string {
	return fmt.Sprintf(
		"%s: Invalid number of arguments in '%s'\n\twant:%d\n\thave:%d",
		err.Position,
		err.Position.Text,
		err.Required,
		err.Received,
	)
}

type UnknownIdentifierError struct {
	Position Cursor
	Received string
}

func (err *UnknownIdentifierError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownIdentifierError) Error() string {
	return fmt.Sprintf(
		"%s: Unknown instruction '%s' in '%s'",
		err.Position,
		err.Received,
		err.Position.Text,
	)
}

// An operand that failed to parse. Err is the error from the fields package.
type InvalidOperandError struct {
	Position Cursor
	Received string
	Err      error
}

func (err *InvalidOperandError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidOperandError) Error() string {
	return fmt.Sprintf(
		"%s: Invalid operand '%s' in '%s': %v",
		err.Position,
		err.Received,
		err.Position.Text,
		err.Err,
	)
}

func (err *InvalidOperandError) Unwrap() error {
	return err.Err
}

// Wraps any error raised while an instruction runs against a Sink.
type AssemblyError struct {
	Position Cursor
	Err      error
}

func (err *AssemblyError) GetPosition() Cursor {
	return err.Position
}

func (err *AssemblyError) Error() string {
	return fmt.Sprintf("%s: %v in '%s'", err.Position, err.Err, err.Position.Text)
}

func (err *AssemblyError) Unwrap() error {
	return err.Err
}

type RedeclaredLabelError struct {
	Received string
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf("Redeclaration of label '%s'", err.Received)
}

type UnknownLabelError struct {
	Received string
}

func (err *UnknownLabelError) Error() string {
	return fmt.Sprintf("Unknown label '%s'", err.Received)
}

// The address a label resolved to in the discovery pass differs from the
// address seen while emitting.
type LabelMismatchError struct {
	Received string
	Want     uint32
	Have     uint32
}

func (err *LabelMismatchError) Error() string {
	return fmt.Sprintf(
		"Label '%s' moved between passes\n\twant:%#08x\n\thave:%#08x",
		err.Received,
		err.Want,
		err.Have,
	)
}

type OversizedLabelError struct {
	Received string
	Width    uint
	Offset   int64
}

func (err *OversizedLabelError) Error() string {
	limit := int64(1) << (err.Width - 1)

	return fmt.Sprintf(
		"Label '%s' exceeds allowed distance\n\twant:[%d, %d] words\n\thave:%d",
		err.Received,
		-limit,
		limit-1,
		err.Offset,
	)
}

type OversizedBinaryError struct{}

func (err *OversizedBinaryError) Error() string {
	return "Binary exceeds allowed size"
}

// Errors from Parse, one per offending line.
type SyntaxErrors []error

func (errs SyntaxErrors) Error() string {
	lines := make([]string, 0, len(errs))

	for _, err := range errs {
		lines = append(lines, err.Error())
	}

	return strings.Join(lines, "\n")
}

func (errs SyntaxErrors) Unwrap() []error {
	return errs
}

type UndefinedParameterError struct {
	Received string
}

func (err *UndefinedParameterError) Error() string {
	return fmt.Sprintf("Undefined template parameter '%s'", err.Received)
}
