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
	"github.com/lassandro/irisc/pkg/encoding"
	"github.com/lassandro/irisc/pkg/fields"
)

// Sink is the target an instruction assembles against. Both passes of the
// assembler are Sinks driven by Run, so their per-instruction address
// accounting cannot diverge.
type Sink interface {
	// Address of the next word to be emitted.
	CurrentAddress() uint32
	DefineLabel(name string, address uint32) error
	LookupLabel(name string) (uint32, error)
	// Writes one word and advances the address by WORD_SIZE.
	Emit(bits fields.Bits) error
}

// Sinks that want to know which statement is being assembled.
type positionTracker interface {
	Track(position Cursor)
}

func Run(sink Sink, program []Instruction) error {
	tracker, tracking := sink.(positionTracker)

	for _, inst := range program {
		if tracking {
			tracker.Track(inst.Pos())
		}

		if err := inst.Assemble(sink); err != nil {
			return &AssemblyError{inst.Pos(), err}
		}
	}

	return nil
}

// Discovery pass. Records label addresses and counts emitted words.
type LabelSink struct {
	Base   uint32
	Labels Labels
	offset uint64
}

func NewLabelSink(base uint32) *LabelSink {
	return &LabelSink{Base: base, Labels: make(Labels)}
}

func (sink *LabelSink) CurrentAddress() uint32 {
	return sink.Base + uint32(sink.offset)
}

func (sink *LabelSink) DefineLabel(name string, address uint32) error {
	if uint64(sink.Base)+sink.offset >= ADDRESS_SPACE_SIZE {
		return &OversizedBinaryError{}
	}

	if _, exists := sink.Labels[name]; exists {
		return &RedeclaredLabelError{name}
	}

	sink.Labels[name] = address

	return nil
}

// Forward references are not known yet. The current address stands in for
// them so that offset encoding succeeds; the words of this pass are
// discarded.
func (sink *LabelSink) LookupLabel(name string) (uint32, error) {
	if address, exists := sink.Labels[name]; exists {
		return address, nil
	}

	return sink.CurrentAddress(), nil
}

func (sink *LabelSink) Emit(bits fields.Bits) error {
	if uint64(sink.Base)+sink.offset+WORD_SIZE > ADDRESS_SPACE_SIZE {
		return &OversizedBinaryError{}
	}

	sink.offset += WORD_SIZE

	return nil
}

// Emission pass. Resolves labels against the table built by a LabelSink and
// renders each word big-endian.
type OutputSink struct {
	Base     uint32
	Labels   Labels
	Output   []byte
	SymTable *SymTable

	position Cursor
}

func NewOutputSink(base uint32, labels Labels) *OutputSink {
	return &OutputSink{Base: base, Labels: labels, Output: []byte{}}
}

func (sink *OutputSink) CurrentAddress() uint32 {
	return sink.Base + uint32(len(sink.Output))
}

func (sink *OutputSink) DefineLabel(name string, address uint32) error {
	if uint64(sink.Base)+uint64(len(sink.Output)) >= ADDRESS_SPACE_SIZE {
		return &OversizedBinaryError{}
	}

	want, exists := sink.Labels[name]

	if !exists {
		return &UnknownLabelError{name}
	}

	if want != address {
		return &LabelMismatchError{name, want, address}
	}

	return nil
}

func (sink *OutputSink) LookupLabel(name string) (uint32, error) {
	if address, exists := sink.Labels[name]; exists {
		return address, nil
	}

	return 0, &UnknownLabelError{name}
}

func (sink *OutputSink) Emit(bits fields.Bits) error {
	if uint64(sink.Base)+uint64(len(sink.Output))+WORD_SIZE > ADDRESS_SPACE_SIZE {
		return &OversizedBinaryError{}
	}

	if sink.SymTable != nil {
		sink.SymTable.Symbols[sink.CurrentAddress()] = sink.position.LineByte
	}

	sink.Output = encoding.PutWord(sink.Output, bits.Bits())

	return nil
}

func (sink *OutputSink) Track(position Cursor) {
	sink.position = position
}
