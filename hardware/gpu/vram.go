package gpu

import (
	"encoding/binary"
	"fmt"
)

// VRAM geometry. The video memory is addressed as a grid of 16bit color
// words, 1024 words to a scanline and 512 scanlines
const (
	WidthWords  = 1024
	HeightWords = 512

	// NumWords is the number of 16bit words in VRAM
	NumWords = WidthWords * HeightWords

	// NumUnits is the number of 32bit storage units backing VRAM. every unit
	// packs two color words, the low halfword at the even word address and
	// the high halfword at the odd word address
	NumUnits = NumWords / 2

	// Size of VRAM in bytes
	Size = NumUnits * 4

	// AddrMask wraps a linear word address into the addressable range. the
	// mask covers one bit more than NumWords requires, matching the address
	// space the display hardware decodes from
	AddrMask = 0xfffff

	// unit index taken from a wrapped word address can still point past the
	// end of the unit slice. the fetch aliases back into the slice
	unitMask = NumUnits - 1
)

// WordAddress returns the linear word address for word coordinates (x, y).
// The address wraps rather than overflowing so the function is total over
// all inputs
func WordAddress(x uint32, y uint32) uint32 {
	return (x + y*WidthWords) & AddrMask
}

// Vram is the console's video memory. It is not connected to any bus in the
// usual sense. The host mutates it directly and the decode stage reads it
// through the Units() view
type Vram struct {
	units []uint32
}

func NewVram() *Vram {
	return &Vram{
		units: make([]uint32, NumUnits),
	}
}

// Word returns the 16bit color word at the linear word address. Addresses
// beyond the addressable range wrap
func (v *Vram) Word(addr uint32) uint16 {
	addr &= AddrMask
	u := v.units[(addr>>1)&unitMask]
	return uint16(u >> (16 * (addr & 1)))
}

// Load16 returns the color word at word coordinates (x, y)
func (v *Vram) Load16(x uint32, y uint32) uint16 {
	return v.Word(WordAddress(x, y))
}

// Store16 writes a color word at word coordinates (x, y), replacing only the
// halfword of the storage unit the address selects
func (v *Vram) Store16(x uint32, y uint32, val uint16) {
	addr := WordAddress(x, y)
	i := (addr >> 1) & unitMask
	shift := 16 * (addr & 1)
	v.units[i] = v.units[i]&^(uint32(0xffff)<<shift) | uint32(val)<<shift
}

func (v *Vram) Clear() {
	clear(v.units)
}

// Units is the storage unit view of VRAM used by the decode stage. The
// returned slice is the live backing store and must not be mutated while a
// decode pass is running
func (v *Vram) Units() []uint32 {
	return v.units
}

// Data returns the contents of VRAM as a little-endian byte dump
func (v *Vram) Data() []byte {
	data := make([]byte, Size)
	for i, u := range v.units {
		binary.LittleEndian.PutUint32(data[i*4:], u)
	}
	return data
}

// SetData replaces the contents of VRAM with the supplied byte dump. Dumps
// shorter than the VRAM size are zero padded. Longer dumps are an error
func (v *Vram) SetData(data []byte) error {
	if len(data) > Size {
		return fmt.Errorf("vram: dump is %d bytes, maximum is %d", len(data), Size)
	}

	buf := make([]byte, Size)
	copy(buf, data)
	for i := range v.units {
		v.units[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}

	return nil
}
