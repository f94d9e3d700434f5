package monitor

import (
	"testing"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
	"github.com/SebastianRueClausen/spillestation/test"
)

func TestParseValue(t *testing.T) {
	v, err := parseValue("1234", 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1234)

	v, err = parseValue("0x1234", 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1234)

	v, err = parseValue("$ffff", 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xffff)

	// out of range for the bit size
	_, err = parseValue("0x10000", 16)
	test.ExpectFailure(t, err)

	_, err = parseValue("nonsense", 16)
	test.ExpectFailure(t, err)

	// negative values are not addresses or color words
	_, err = parseValue("-1", 16)
	test.ExpectFailure(t, err)
}

func TestParseResolution(t *testing.T) {
	h, v, err := parseResolution("320x240")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, gpu.HRes320)
	test.ExpectEquality(t, v, gpu.VRes240)

	// upper case separator is accepted
	h, v, err = parseResolution("640X480")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, gpu.HRes640)
	test.ExpectEquality(t, v, gpu.VRes480)

	_, _, err = parseResolution("320")
	test.ExpectFailure(t, err)

	_, _, err = parseResolution("wide x tall")
	test.ExpectFailure(t, err)

	// parses but is not a resolution the console can output. the gpu
	// rejects it when the resolution is applied
	h, v, err = parseResolution("100x100")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, h.Valid())
	test.ExpectFailure(t, v.Valid())
}
