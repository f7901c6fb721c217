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
	"github.com/lassandro/irisc/pkg/fields"
)

// An Instruction encodes itself against a Sink. Pseudo-instructions expand
// by assembling their physical constituents, so only physical instructions
// ever call Sink.Emit.
type Instruction interface {
	Assemble(sink Sink) error
	Pos() Cursor
	Kind() InstructionType
}

type Statement struct {
	Type     InstructionType
	Position Cursor
}

func (s Statement) Pos() Cursor {
	return s.Position
}

func (s Statement) Kind() InstructionType {
	return s.Type
}

// lbl name
type LabelDef struct {
	Statement
	Name fields.Label
}

func (inst LabelDef) Assemble(sink Sink) error {
	return sink.DefineLabel(string(inst.Name), sink.CurrentAddress())
}

// UNKI |opcode |rs   |rd   |uimm16                | Unknown, immediate form
// ---- [31   26|25 21|20 16|15                   0]
type UnknownImm struct {
	Statement
	Opcode fields.Opcode
	Rd     fields.Rd
	Rs     fields.Rs
	Imm    fields.Uimm
}

func (inst UnknownImm) Assemble(sink Sink) error {
	return sink.Emit(fields.Combine(inst.Opcode, inst.Rd, inst.Rs, inst.Imm))
}

// UNKR |opcode |rs   |rd   |rt   |uimm11          | Unknown, register form
// ---- [31   26|25 21|20 16|15 11|10             0]
type UnknownReg struct {
	Statement
	Opcode fields.Opcode
	Rd     fields.Rd
	Rs     fields.Rs
	Rt     fields.Rt
	Imm    fields.Uimm
}

func (inst UnknownReg) Assemble(sink Sink) error {
	return sink.Emit(
		fields.Combine(inst.Opcode, inst.Rd, inst.Rs, inst.Rt, inst.Imm),
	)
}

// ADDI |000000 |rs   |rd   |simm16                | Add immediate
// ---- [31   26|25 21|20 16|15                   0]
type Addi struct {
	Statement
	Rd  fields.Rd
	Rs  fields.Rs
	Imm fields.Simm
}

func (inst Addi) Assemble(sink Sink) error {
	return sink.Emit(fields.Combine(OPCODE_ADDI, inst.Rd, inst.Rs, inst.Imm))
}

// JUMP |100101 |0|1|simm24                       | Jump
// CALL |100101 |0|0|simm24                       | Call
// ---- [31   26|25|24|23                        0]
type Jump struct {
	Statement
	Op     fields.Jmpop
	Target fields.Label
}

func (inst Jump) Assemble(sink Sink) error {
	offset, err := relativeOffset(sink, inst.Target, JUMP_OFFSET_WIDTH)

	if err != nil {
		return err
	}

	return sink.Emit(fields.Combine(OPCODE_JUMP, inst.Op, offset))
}

// B.T  |101000 |rs   |cmpop|simm16                | Branch if true
// B.F  |101001 |rs   |cmpop|simm16                | Branch if false
// B.SET|101010 |rs   |bit  |simm16                | Branch if bit set
// B.CLR|101011 |rs   |bit  |simm16                | Branch if bit clear
// ---- [31   26|25 21|20 16|15                   0]
type Branch struct {
	Statement
	Opcode fields.Opcode
	Cond   fields.Cond
	Rs     fields.Rs
	Target fields.Label
}

func (inst Branch) Assemble(sink Sink) error {
	offset, err := relativeOffset(sink, inst.Target, BRANCH_OFFSET_WIDTH)

	if err != nil {
		return err
	}

	return sink.Emit(fields.Combine(inst.Opcode, inst.Rs, inst.Cond, offset))
}

// Signed word distance from the current instruction to target.
func relativeOffset(sink Sink, target fields.Label, width uint) (fields.Simm, error) {
	addr, err := sink.LookupLabel(string(target))

	if err != nil {
		return fields.Simm{}, err
	}

	offset := (int64(addr) - int64(sink.CurrentAddress())) >> 2

	simm, err := fields.NewSimm(width, offset)

	if err != nil {
		return fields.Simm{}, &OversizedLabelError{string(target), width, offset}
	}

	return simm, nil
}

// SETn |0001xx |rs   |rd   |uimm16                | Load 16-bit chunk n
// ---- [31   26|25 21|20 16|15                   0]
type Set struct {
	Statement
	Index uint
	Rd    fields.Rd
	Rs    fields.Rs
	Imm   fields.Uimm
}

var setOpcodes = [4]fields.Opcode{OPCODE_SET0, OPCODE_SET1, OPCODE_SET2, OPCODE_SET3}

func (inst Set) Assemble(sink Sink) error {
	return sink.Emit(
		fields.Combine(setOpcodes[inst.Index], inst.Rd, inst.Rs, inst.Imm),
	)
}

// set32 rd, uimm32 => set2 rd, zero, hi16; set3 rd, rd, lo16
type Set32 struct {
	Statement
	Rd  fields.Rd
	Imm fields.Uimm
}

func (inst Set32) Expand() []Set {
	return []Set{
		{inst.expanded(INSTRUCTION_SET2), 2, inst.Rd, 0, inst.Imm.Chunk(1)},
		{inst.expanded(INSTRUCTION_SET3), 3, inst.Rd, fields.Rs(inst.Rd), inst.Imm.Chunk(0)},
	}
}

func (inst Set32) Assemble(sink Sink) error {
	return assembleAll(sink, inst.Expand())
}

// set64 rd, uimm64 => set0 rd, zero, [63:48]; set1..set3 rd, rd, ...
type Set64 struct {
	Statement
	Rd  fields.Rd
	Imm fields.Uimm
}

func (inst Set64) Expand() []Set {
	sets := make([]Set, 0, 4)

	for index := uint(0); index < 4; index++ {
		rs := fields.Rs(inst.Rd)

		if index == 0 {
			rs = 0
		}

		sets = append(sets, Set{
			Statement: inst.expanded(INSTRUCTION_SET0 + InstructionType(index)),
			Index:     index,
			Rd:        inst.Rd,
			Rs:        rs,
			Imm:       inst.Imm.Chunk(3 - index),
		})
	}

	return sets
}

func (inst Set64) Assemble(sink Sink) error {
	return assembleAll(sink, inst.Expand())
}

func (s Statement) expanded(kind InstructionType) Statement {
	return Statement{Type: kind, Position: s.Position}
}

func assembleAll(sink Sink, sets []Set) error {
	for _, set := range sets {
		if err := set.Assemble(sink); err != nil {
			return err
		}
	}

	return nil
}

// ALUR |111111 |rs   |rd   |rt   |funct           | Register ALU operation
// ---- [31   26|25 21|20 16|15 11|10             0]
type AluReg struct {
	Statement
	Funct fields.Funct
	Rd    fields.Rd
	Rs    fields.Rs
	Rt    fields.Rt
}

func (inst AluReg) Assemble(sink Sink) error {
	return sink.Emit(
		fields.Combine(OPCODE_ALU, inst.Rd, inst.Rs, inst.Rt, inst.Funct),
	)
}

// RET.D|111111 |00000|00000|00000|00000101101     | Return
// ---- [31   26|25 21|20 16|15 11|10             0]
type Return struct {
	Statement
}

func (inst Return) Assemble(sink Sink) error {
	return sink.Emit(fields.Combine(OPCODE_ALU, FUNCT_RETD))
}

// LD.B |011000 |rs   |rd   |simm16                | Load byte
// ---- [31   26|25 21|20 16|15                   0]
type LoadByte struct {
	Statement
	Rd  fields.Rd
	Rs  fields.Rs
	Imm fields.Simm
}

func (inst LoadByte) Assemble(sink Sink) error {
	return sink.Emit(fields.Combine(OPCODE_LDB, inst.Rd, inst.Rs, inst.Imm))
}

// LD.x |011001 |rs   |rd   |off14             |sub| Load quad/uword/dword/lword
// ---- [31   26|25 21|20 16|15               2|1 0]
type Load struct {
	Statement
	Sub fields.SubOp
	Rd  fields.Rd
	Rs  fields.Rs
	Off fields.AlignedOffset
}

func (inst Load) Assemble(sink Sink) error {
	return sink.Emit(
		fields.Combine(OPCODE_LD, inst.Rd, inst.Rs, inst.Off, inst.Sub),
	)
}

// ST.B |011010 |rs   |off  |rt   |off             | Store byte
// ---- [31   26|25 21|20 16|15 11|10             0]
type StoreByte struct {
	Statement
	Rt  fields.Rt
	Rs  fields.Rs
	Off fields.StoreOffset
}

func (inst StoreByte) Assemble(sink Sink) error {
	return sink.Emit(fields.Combine(OPCODE_STB, inst.Rs, inst.Rt, inst.Off))
}

// ST.D |011011 |rs   |rd   |rt   |off9        |sub| Store dword
// ST.Q |011110 |rs   |rd   |rt   |off9        |sub| Store quad
// ---- [31   26|25 21|20 16|15 11|10         2|1 0]
type Store struct {
	Statement
	Opcode fields.Opcode
	Sub    fields.SubOp
	Rd     fields.Rd
	Rs     fields.Rs
	Rt     fields.Rt
	Off    fields.AlignedOffset
}

func (inst Store) Assemble(sink Sink) error {
	return sink.Emit(
		fields.Combine(inst.Opcode, inst.Rd, inst.Rs, inst.Rt, inst.Off, inst.Sub),
	)
}
