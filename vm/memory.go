// Package vm models the fragment of Cairo virtual machine state that value
// codecs interact with: write-once segmented memory holding field elements
// and addresses.
package vm

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/cairotypes/felt"
)

var (
	ErrUnknownSegment    = errors.New("unknown memory segment")
	ErrUnknownCell       = errors.New("memory cell is not set")
	ErrExpectedInteger   = errors.New("memory cell holds an address, expected an integer")
	ErrExpectedPointer   = errors.New("memory cell holds an integer, expected an address")
	ErrInconsistentWrite = errors.New("rewriting memory cell with a different value")
)

type cellKind uint8

const (
	cellFelt cellKind = iota
	cellPointer
)

type cell struct {
	kind    cellKind
	felt    felt.Felt
	pointer Relocatable
}

func (c *cell) equal(other *cell) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind == cellPointer {
		return c.pointer == other.pointer
	}
	return c.felt.Equal(&other.felt)
}

// Memory is segmented write-once memory. Cells are created empty when a
// segment is allocated and accept exactly one value; rewriting a cell is an
// error unless the value is identical. Offsets within a segment may be
// written in any order and may leave gaps.
type Memory struct {
	segments []map[uint64]cell
}

func NewMemory() *Memory {
	return &Memory{}
}

// AddSegment allocates a fresh empty segment and returns its base address.
func (m *Memory) AddSegment() Relocatable {
	m.segments = append(m.segments, make(map[uint64]cell))
	return Relocatable{Segment: uint64(len(m.segments) - 1)}
}

// SegmentCount returns the number of allocated segments.
func (m *Memory) SegmentCount() int {
	return len(m.segments)
}

func (m *Memory) segmentFor(addr Relocatable) (map[uint64]cell, error) {
	if addr.Segment >= uint64(len(m.segments)) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSegment, addr)
	}
	return m.segments[addr.Segment], nil
}

func (m *Memory) write(addr Relocatable, c cell) error {
	segment, err := m.segmentFor(addr)
	if err != nil {
		return err
	}
	if old, ok := segment[addr.Offset]; ok {
		if !old.equal(&c) {
			return fmt.Errorf("%w: %s", ErrInconsistentWrite, addr)
		}
		return nil
	}
	segment[addr.Offset] = c
	return nil
}

// WriteFelt stores the field element v at addr.
func (m *Memory) WriteFelt(addr Relocatable, v *felt.Felt) error {
	return m.write(addr, cell{kind: cellFelt, felt: *v})
}

// WritePointer stores the address target at addr.
func (m *Memory) WritePointer(addr, target Relocatable) error {
	return m.write(addr, cell{kind: cellPointer, pointer: target})
}

func (m *Memory) read(addr Relocatable) (cell, error) {
	segment, err := m.segmentFor(addr)
	if err != nil {
		return cell{}, err
	}
	c, ok := segment[addr.Offset]
	if !ok {
		return cell{}, fmt.Errorf("%w: %s", ErrUnknownCell, addr)
	}
	return c, nil
}

// ReadFelt returns the field element stored at addr.
func (m *Memory) ReadFelt(addr Relocatable) (felt.Felt, error) {
	c, err := m.read(addr)
	if err != nil {
		return felt.Felt{}, err
	}
	if c.kind != cellFelt {
		return felt.Felt{}, fmt.Errorf("%w: %s", ErrExpectedInteger, addr)
	}
	return c.felt, nil
}

// ReadPointer returns the address stored at addr.
func (m *Memory) ReadPointer(addr Relocatable) (Relocatable, error) {
	c, err := m.read(addr)
	if err != nil {
		return Relocatable{}, err
	}
	if c.kind != cellPointer {
		return Relocatable{}, fmt.Errorf("%w: %s", ErrExpectedPointer, addr)
	}
	return c.pointer, nil
}
