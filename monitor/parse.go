package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
)

// numbers are parsed with the usual Go prefixes, 0x for hexadecimal etc. a
// leading $ is accepted as a synonym for 0x
func parseValue(s string, bitSize int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		s = fmt.Sprintf("0x%s", s[1:])
	}

	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("value is not valid: %s", s)
	}

	return v, nil
}

// parseCoords parses a pair of word coordinates. the coordinates are not
// range checked, addressing wraps
func parseCoords(xs string, ys string) (uint32, uint32, error) {
	x, err := parseValue(xs, 32)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseValue(ys, 32)
	if err != nil {
		return 0, 0, err
	}
	return uint32(x), uint32(y), nil
}

// parseResolution parses a resolution of the form "320x240". validity of
// the dimensions themselves is checked by the GPU when the resolution is
// applied
func parseResolution(s string) (gpu.HorizontalRes, gpu.VerticalRes, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("resolution must be of the form WxH: %s", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("resolution must be of the form WxH: %s", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("resolution must be of the form WxH: %s", s)
	}

	return gpu.HorizontalRes(width), gpu.VerticalRes(height), nil
}
