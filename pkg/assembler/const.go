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

import "github.com/lassandro/irisc/pkg/fields"

const (
	INSTRUCTION_INVALID InstructionType = iota
	INSTRUCTION_LBL

	// Escape hatches
	INSTRUCTION_UNKI
	INSTRUCTION_UNKR

	// Arithmetic
	INSTRUCTION_ADDI
	INSTRUCTION_ALUR
	INSTRUCTION_ADD
	INSTRUCTION_SUB
	INSTRUCTION_SUBS

	// Control transfer
	INSTRUCTION_JUMP
	INSTRUCTION_CALL
	INSTRUCTION_RETD
	INSTRUCTION_BT
	INSTRUCTION_BF
	INSTRUCTION_BSET
	INSTRUCTION_BCLR

	// Immediate loads
	INSTRUCTION_SET0
	INSTRUCTION_SET1
	INSTRUCTION_SET2
	INSTRUCTION_SET3
	INSTRUCTION_SET32
	INSTRUCTION_SET64

	// Memory
	INSTRUCTION_LDB
	INSTRUCTION_LDQ
	INSTRUCTION_LDUW
	INSTRUCTION_LDD
	INSTRUCTION_LDLW
	INSTRUCTION_STB
	INSTRUCTION_STD
	INSTRUCTION_STQ
)

const (
	OPCODE_ADDI fields.Opcode = 0x00
	OPCODE_SET0 fields.Opcode = 0x06
	OPCODE_SET1 fields.Opcode = 0x07
	OPCODE_SET2 fields.Opcode = 0x08
	OPCODE_SET3 fields.Opcode = 0x09
	OPCODE_LDB  fields.Opcode = 0x18
	OPCODE_LD   fields.Opcode = 0x19
	OPCODE_STB  fields.Opcode = 0x1a
	OPCODE_STD  fields.Opcode = 0x1b
	OPCODE_STQ  fields.Opcode = 0x1e
	OPCODE_JUMP fields.Opcode = 0x25
	OPCODE_BT   fields.Opcode = 0x28
	OPCODE_BF   fields.Opcode = 0x29
	OPCODE_BSET fields.Opcode = 0x2a
	OPCODE_BCLR fields.Opcode = 0x2b
	OPCODE_ALU  fields.Opcode = 0x3f
)

const (
	FUNCT_ADD  fields.Funct = 0x000
	FUNCT_SUB  fields.Funct = 0x004
	FUNCT_SUBS fields.Funct = 0x005
	FUNCT_RETD fields.Funct = 0x02d
)

const (
	SUBOP_Q  fields.SubOp = 0
	SUBOP_UW fields.SubOp = 1
	SUBOP_D  fields.SubOp = 2
	SUBOP_LW fields.SubOp = 3
)

const (
	JUMP_OFFSET_WIDTH   = 24
	BRANCH_OFFSET_WIDTH = 16
	WORD_SIZE           = 4
)

// Source syntax
const (
	COMMENT_PREFIX     = "#"
	MNEMONIC_SEPARATOR = " "
	OPERAND_SEPARATOR  = ","
	ADDRESS_SPACE_SIZE = 1 << 32
)

var mnemonics = map[string]InstructionType{
	"lbl":   INSTRUCTION_LBL,
	"unk.i": INSTRUCTION_UNKI,
	"unk.r": INSTRUCTION_UNKR,
	"addi":  INSTRUCTION_ADDI,
	"alu.r": INSTRUCTION_ALUR,
	"add":   INSTRUCTION_ADD,
	"sub":   INSTRUCTION_SUB,
	"subs":  INSTRUCTION_SUBS,
	"jump":  INSTRUCTION_JUMP,
	"call":  INSTRUCTION_CALL,
	"ret.d": INSTRUCTION_RETD,
	"b.t":   INSTRUCTION_BT,
	"b.f":   INSTRUCTION_BF,
	"b.set": INSTRUCTION_BSET,
	"b.clr": INSTRUCTION_BCLR,
	"set0":  INSTRUCTION_SET0,
	"set1":  INSTRUCTION_SET1,
	"set2":  INSTRUCTION_SET2,
	"set3":  INSTRUCTION_SET3,
	"set32": INSTRUCTION_SET32,
	"set64": INSTRUCTION_SET64,
	"ld.b":  INSTRUCTION_LDB,
	"ld.q":  INSTRUCTION_LDQ,
	"ld.uw": INSTRUCTION_LDUW,
	"ld.d":  INSTRUCTION_LDD,
	"ld.lw": INSTRUCTION_LDLW,
	"st.b":  INSTRUCTION_STB,
	"st.d":  INSTRUCTION_STD,
	"st.q":  INSTRUCTION_STQ,
}

var operandCounts = map[InstructionType]int{
	INSTRUCTION_LBL:   1,
	INSTRUCTION_UNKI:  4,
	INSTRUCTION_UNKR:  5,
	INSTRUCTION_ADDI:  3,
	INSTRUCTION_ALUR:  4,
	INSTRUCTION_ADD:   3,
	INSTRUCTION_SUB:   3,
	INSTRUCTION_SUBS:  3,
	INSTRUCTION_JUMP:  1,
	INSTRUCTION_CALL:  1,
	INSTRUCTION_RETD:  0,
	INSTRUCTION_BT:    3,
	INSTRUCTION_BF:    3,
	INSTRUCTION_BSET:  3,
	INSTRUCTION_BCLR:  3,
	INSTRUCTION_SET0:  3,
	INSTRUCTION_SET1:  3,
	INSTRUCTION_SET2:  3,
	INSTRUCTION_SET3:  3,
	INSTRUCTION_SET32: 2,
	INSTRUCTION_SET64: 2,
	INSTRUCTION_LDB:   3,
	INSTRUCTION_LDQ:   3,
	INSTRUCTION_LDUW:  3,
	INSTRUCTION_LDD:   3,
	INSTRUCTION_LDLW:  3,
	INSTRUCTION_STB:   3,
	INSTRUCTION_STD:   4,
	INSTRUCTION_STQ:   4,
}
