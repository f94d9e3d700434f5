package gpu_test

import (
	"testing"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
	"github.com/SebastianRueClausen/spillestation/test"
)

// the display start registers are narrower than a full word coordinate. x is
// masked to 10 bits and y to 9 bits
func TestDisplayStartMasking(t *testing.T) {
	g := gpu.Create()

	g.SetDisplayStart(1023, 511)
	test.ExpectEquality(t, g.DisplayStart(), gpu.DisplayStart{X: 1023, Y: 511})

	g.SetDisplayStart(1024, 512)
	test.ExpectEquality(t, g.DisplayStart(), gpu.DisplayStart{X: 0, Y: 0})

	g.SetDisplayStart(0xffffffff, 0xffffffff)
	test.ExpectEquality(t, g.DisplayStart(), gpu.DisplayStart{X: 1023, Y: 511})
}

func TestResolutionValues(t *testing.T) {
	for _, h := range []gpu.HorizontalRes{gpu.HRes256, gpu.HRes320, gpu.HRes368, gpu.HRes512, gpu.HRes640} {
		test.ExpectSuccess(t, h.Valid())
		test.ExpectEquality(t, h.Width(), int(h))
	}
	test.ExpectFailure(t, gpu.HorizontalRes(300).Valid())

	for _, v := range []gpu.VerticalRes{gpu.VRes240, gpu.VRes480} {
		test.ExpectSuccess(t, v.Valid())
		test.ExpectEquality(t, v.Height(), int(v))
	}
	test.ExpectFailure(t, gpu.VerticalRes(300).Valid())
}

func TestSetResolution(t *testing.T) {
	g := gpu.Create()

	test.ExpectSuccess(t, g.SetResolution(gpu.HRes640, gpu.VRes480))
	h, v := g.Resolution()
	test.ExpectEquality(t, h, gpu.HRes640)
	test.ExpectEquality(t, v, gpu.VRes480)

	// invalid resolutions are rejected and leave the registers alone
	test.ExpectFailure(t, g.SetResolution(gpu.HorizontalRes(100), gpu.VRes240))
	test.ExpectFailure(t, g.SetResolution(gpu.HRes256, gpu.VerticalRes(100)))
	h, v = g.Resolution()
	test.ExpectEquality(t, h, gpu.HRes640)
	test.ExpectEquality(t, v, gpu.VRes480)
}

// DrawInfo is a snapshot. changing the registers after taking it must not
// affect the snapshot
func TestDrawInfoSnapshot(t *testing.T) {
	g := gpu.Create()

	g.SetDisplayStart(64, 32)
	test.ExpectSuccess(t, g.SetResolution(gpu.HRes320, gpu.VRes240))

	info := g.DrawInfo()
	test.ExpectEquality(t, info, gpu.DrawInfo{X: 64, Y: 32, Width: 320, Height: 240})

	g.SetDisplayStart(0, 0)
	test.ExpectSuccess(t, g.SetResolution(gpu.HRes640, gpu.VRes480))
	test.ExpectEquality(t, info, gpu.DrawInfo{X: 64, Y: 32, Width: 320, Height: 240})
}
