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
	"strings"
	"unicode"

	"github.com/lassandro/irisc/pkg/fields"
)

// Parse reads one instruction per line. Blank lines and lines starting with
// '#' are skipped. Every malformed line is reported; the returned error is a
// SyntaxErrors when any line failed.
func Parse(source string) ([]Instruction, error) {
	var program []Instruction
	var errs SyntaxErrors

	var cursor = Cursor{Line: 1}

	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSuffix(raw, "\r")

		cursor.Text = strings.TrimSpace(line)
		cursor.Size = int64(len(line))

		if cursor.Text != "" && !strings.HasPrefix(cursor.Text, COMMENT_PREFIX) {
			inst, err := parseLine(line, cursor)

			if err != nil {
				errs = append(errs, err)
			} else {
				program = append(program, inst)
			}
		}

		cursor.Line++
		cursor.LineByte += int64(len(raw) + 1)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return program, nil
}

// Splits a line into its mnemonic and operand tokens, recording the column
// of each. The mnemonic ends at the first space; indentation may be any
// whitespace.
func tokenize(line string, cursor Cursor) (Token, []Token) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	start := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	end := strings.Index(line[start:], MNEMONIC_SEPARATOR)

	keyword := Token{Position: cursor, Value: line[start:]}
	keyword.Position.Column = start + 1

	if end == -1 {
		keyword.Position.Size = int64(len(keyword.Value))
		return keyword, nil
	}

	end += start
	keyword.Value = line[start:end]
	keyword.Position.Size = int64(len(keyword.Value))

	var operands []Token

	column := end

	for _, field := range strings.Split(line[end:], OPERAND_SEPARATOR) {
		value := strings.TrimSpace(field)

		if value != "" {
			token := Token{Position: cursor, Value: value}
			token.Position.Column = column + strings.Index(field, value) + 1
			token.Position.Size = int64(len(value))
			operands = append(operands, token)
		}

		column += len(field) + len(OPERAND_SEPARATOR)
	}

	return keyword, operands
}

func parseLine(line string, cursor Cursor) (Instruction, error) {
	keyword, tokens := tokenize(line, cursor)

	instruction, known := mnemonics[keyword.Value]

	if !known {
		return nil, &UnknownIdentifierError{keyword.Position, keyword.Value}
	}

	if want := operandCounts[instruction]; len(tokens) != want {
		return nil, &InvalidNumArgumentsError{keyword.Position, want, len(tokens)}
	}

	ops := operands{tokens: tokens}
	stmt := Statement{Type: instruction, Position: keyword.Position}

	var inst Instruction

	switch instruction {
	case INSTRUCTION_LBL:
		inst = LabelDef{stmt, ops.label(0)}

	case INSTRUCTION_UNKI:
		inst = UnknownImm{stmt, ops.opcode(0), ops.rd(1), ops.rs(2), ops.uimm(3, 16)}

	case INSTRUCTION_UNKR:
		inst = UnknownReg{
			stmt, ops.opcode(0), ops.rd(1), ops.rs(2), ops.rt(3), ops.uimm(4, 11),
		}

	case INSTRUCTION_ADDI:
		inst = Addi{stmt, ops.rd(0), ops.rs(1), ops.simm(2, 16)}

	case INSTRUCTION_JUMP:
		inst = Jump{stmt, fields.JmpopJump, ops.label(0)}

	case INSTRUCTION_CALL:
		inst = Jump{stmt, fields.JmpopCall, ops.label(0)}

	case INSTRUCTION_BT, INSTRUCTION_BF:
		opcode := OPCODE_BT

		if instruction == INSTRUCTION_BF {
			opcode = OPCODE_BF
		}

		inst = Branch{stmt, opcode, ops.cond(0), ops.rs(1), ops.label(2)}

	case INSTRUCTION_BSET, INSTRUCTION_BCLR:
		opcode := OPCODE_BSET

		if instruction == INSTRUCTION_BCLR {
			opcode = OPCODE_BCLR
		}

		rs := ops.rs(0)
		inst = Branch{stmt, opcode, ops.cond(1), rs, ops.label(2)}

	case INSTRUCTION_SET0, INSTRUCTION_SET1, INSTRUCTION_SET2, INSTRUCTION_SET3:
		index := uint(instruction - INSTRUCTION_SET0)
		inst = Set{stmt, index, ops.rd(0), ops.rs(1), ops.uimm(2, 16)}

	case INSTRUCTION_SET32:
		inst = Set32{stmt, ops.rd(0), ops.uimm(1, 32)}

	case INSTRUCTION_SET64:
		inst = Set64{stmt, ops.rd(0), ops.uimm(1, fields.UncheckedWidth)}

	case INSTRUCTION_ALUR:
		inst = AluReg{stmt, ops.funct(0), ops.rd(1), ops.rs(2), ops.rt(3)}

	case INSTRUCTION_ADD, INSTRUCTION_SUB, INSTRUCTION_SUBS:
		funct := map[InstructionType]fields.Funct{
			INSTRUCTION_ADD:  FUNCT_ADD,
			INSTRUCTION_SUB:  FUNCT_SUB,
			INSTRUCTION_SUBS: FUNCT_SUBS,
		}[instruction]

		inst = AluReg{stmt, funct, ops.rd(0), ops.rs(1), ops.rt(2)}

	case INSTRUCTION_RETD:
		inst = Return{stmt}

	case INSTRUCTION_LDB:
		inst = LoadByte{stmt, ops.rd(0), ops.rs(1), ops.simm(2, 16)}

	case INSTRUCTION_LDQ, INSTRUCTION_LDUW, INSTRUCTION_LDD, INSTRUCTION_LDLW:
		sub := fields.SubOp(instruction - INSTRUCTION_LDQ)
		inst = Load{stmt, sub, ops.rd(0), ops.rs(1), ops.offset(2, 14)}

	case INSTRUCTION_STB:
		inst = StoreByte{stmt, ops.rt(0), ops.rs(1), ops.storeOffset(2)}

	case INSTRUCTION_STD:
		inst = Store{
			stmt, OPCODE_STD, SUBOP_D, ops.rd(0), ops.rs(1), ops.rt(2), ops.offset(3, 9),
		}

	case INSTRUCTION_STQ:
		inst = Store{
			stmt, OPCODE_STQ, SUBOP_Q, ops.rd(0), ops.rs(1), ops.rt(2), ops.offset(3, 9),
		}
	}

	if ops.err != nil {
		return nil, ops.err
	}

	return inst, nil
}

// Operand reader. The first failure sticks and later reads return zero
// values.
type operands struct {
	tokens []Token
	err    error
}

func (ops *operands) check(index int, err error) bool {
	if ops.err != nil {
		return false
	}

	if err != nil {
		token := ops.tokens[index]
		ops.err = &InvalidOperandError{token.Position, token.Value, err}
		return false
	}

	return true
}

func (ops *operands) value(index int) string {
	return ops.tokens[index].Value
}

func (ops *operands) rd(index int) fields.Rd {
	r, err := fields.ParseRd(ops.value(index))
	ops.check(index, err)
	return r
}

func (ops *operands) rs(index int) fields.Rs {
	r, err := fields.ParseRs(ops.value(index))
	ops.check(index, err)
	return r
}

func (ops *operands) rt(index int) fields.Rt {
	r, err := fields.ParseRt(ops.value(index))
	ops.check(index, err)
	return r
}

func (ops *operands) opcode(index int) fields.Opcode {
	op, err := fields.ParseOpcode(ops.value(index))
	ops.check(index, err)
	return op
}

func (ops *operands) funct(index int) fields.Funct {
	f, err := fields.ParseFunct(ops.value(index))
	ops.check(index, err)
	return f
}

func (ops *operands) cond(index int) fields.Cond {
	c, err := fields.ParseCond(ops.value(index))
	ops.check(index, err)
	return c
}

func (ops *operands) uimm(index int, width uint) fields.Uimm {
	u, err := fields.ParseUimm(width, ops.value(index))
	ops.check(index, err)
	return u
}

func (ops *operands) simm(index int, width uint) fields.Simm {
	s, err := fields.ParseSimm(width, ops.value(index))
	ops.check(index, err)
	return s
}

func (ops *operands) offset(index int, width uint) fields.AlignedOffset {
	o, err := fields.ParseAlignedOffset(width, ops.value(index))
	ops.check(index, err)
	return o
}

func (ops *operands) storeOffset(index int) fields.StoreOffset {
	o, err := fields.ParseStoreOffset(ops.value(index))
	ops.check(index, err)
	return o
}

func (ops *operands) label(index int) fields.Label {
	l, err := fields.ParseLabel(ops.value(index))
	ops.check(index, err)
	return l
}
