package vm

import "fmt"

// Relocatable is a segmented memory address: a segment index paired with an
// offset into that segment. Addresses are only ordered within a segment.
type Relocatable struct {
	Segment uint64
	Offset  uint64
}

func NewRelocatable(segment, offset uint64) Relocatable {
	return Relocatable{Segment: segment, Offset: offset}
}

// Add returns the address n cells after r in the same segment.
func (r Relocatable) Add(n uint64) Relocatable {
	return Relocatable{Segment: r.Segment, Offset: r.Offset + n}
}

func (r Relocatable) String() string {
	return fmt.Sprintf("%d:%d", r.Segment, r.Offset)
}
