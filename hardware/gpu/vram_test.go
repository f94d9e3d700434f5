package gpu_test

import (
	"math/rand/v2"
	"testing"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
	"github.com/SebastianRueClausen/spillestation/test"
)

// the wrapped word address must agree with the true modulo for any pair of
// word coordinates, including pairs whose linear sum overflows uint32
func TestWordAddressWraparound(t *testing.T) {
	// fixed points first
	test.ExpectEquality(t, gpu.WordAddress(0, 0), 0)
	test.ExpectEquality(t, gpu.WordAddress(1023, 0), 1023)
	test.ExpectEquality(t, gpu.WordAddress(0, 1), 1024)
	test.ExpectEquality(t, gpu.WordAddress(1024, 0), 1024)
	test.ExpectEquality(t, gpu.WordAddress(0, 512), 0x80000)
	test.ExpectEquality(t, gpu.WordAddress(0xffffffff, 0xffffffff), uint32((0xffffffff+0xffffffff*1024)&0xfffff))

	for range 1000 {
		x := rand.Uint32()
		y := rand.Uint32()

		// the linear address wraps modulo 2^20. because 2^20 divides 2^32
		// the uint32 sum and the unbounded sum agree after the mask, which
		// is exactly what we want to demonstrate
		expected := uint32((uint64(x) + uint64(y)*gpu.WidthWords) % (gpu.AddrMask + 1))
		test.ExpectEquality(t, gpu.WordAddress(x, y), expected)
	}
}

// every storage unit holds two color words, the low halfword at the even
// address and the high halfword at the odd address
func TestWordHalfSelection(t *testing.T) {
	v := gpu.NewVram()

	// unit 0 as raw little-endian bytes: low halfword 0x0000, high 0x1234
	data := make([]byte, 4)
	data[0] = 0x00
	data[1] = 0x00
	data[2] = 0x34
	data[3] = 0x12
	test.ExpectSuccess(t, v.SetData(data))

	test.ExpectEquality(t, v.Units()[0], 0x12340000)
	test.ExpectEquality(t, v.Word(0), 0x0000)
	test.ExpectEquality(t, v.Word(1), 0x1234)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	v := gpu.NewVram()

	for range 1000 {
		x := rand.Uint32() % gpu.WidthWords
		y := rand.Uint32() % gpu.HeightWords
		val := uint16(rand.Uint32())

		v.Store16(x, y, val)
		test.ExpectEquality(t, v.Load16(x, y), val)

		// the neighbouring halfword in the same storage unit is untouched
		// by a second store to the original address
		other := uint16(rand.Uint32())
		v.Store16(x^1, y, other)
		test.ExpectEquality(t, v.Load16(x, y), val)
		test.ExpectEquality(t, v.Load16(x^1, y), other)
	}
}

// coordinates beyond the VRAM grid wrap the same way the decode addressing
// does. x overflow runs into the next scanline
func TestStoreWraparound(t *testing.T) {
	v := gpu.NewVram()

	v.Store16(gpu.WidthWords, 0, 0xabcd)
	test.ExpectEquality(t, v.Load16(0, 1), 0xabcd)

	// a whole address space of wraparound lands on the origin
	v.Store16(0, 0, 0x1111)
	test.ExpectEquality(t, v.Load16(0, gpu.AddrMask/gpu.WidthWords+1), 0x1111)
}

// word addresses in the upper half of the wrapped address range alias back
// into the storage units. loads never fail whatever the address
func TestAddressAliasing(t *testing.T) {
	v := gpu.NewVram()

	v.Store16(0, 0, 0x7fff)
	test.ExpectEquality(t, v.Word(gpu.NumWords), 0x7fff)
	test.ExpectEquality(t, v.Word(0xffffffff), v.Word(gpu.AddrMask))
}

func TestClear(t *testing.T) {
	v := gpu.NewVram()

	v.Store16(100, 100, 0xffff)
	v.Clear()
	test.ExpectEquality(t, v.Load16(100, 100), 0)
}

func TestDataRoundTrip(t *testing.T) {
	v := gpu.NewVram()

	for range 100 {
		x := rand.Uint32() % gpu.WidthWords
		y := rand.Uint32() % gpu.HeightWords
		v.Store16(x, y, uint16(rand.Uint32()))
	}

	d := v.Data()
	test.ExpectEquality(t, len(d), gpu.Size)

	w := gpu.NewVram()
	test.ExpectSuccess(t, w.SetData(d))
	for i := range gpu.NumUnits {
		if w.Units()[i] != v.Units()[i] {
			t.Fatalf("unit %d differs after round trip", i)
		}
	}
}

// short dumps are zero padded, oversize dumps are rejected
func TestDataSizing(t *testing.T) {
	v := gpu.NewVram()
	v.Store16(0, gpu.HeightWords-1, 0xffff)

	test.ExpectSuccess(t, v.SetData([]byte{0xcd, 0xab}))
	test.ExpectEquality(t, v.Word(0), 0xabcd)
	test.ExpectEquality(t, v.Load16(0, gpu.HeightWords-1), 0)

	test.ExpectFailure(t, v.SetData(make([]byte, gpu.Size+1)))
}
