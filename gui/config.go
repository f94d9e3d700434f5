package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SebastianRueClausen/spillestation/resources"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

// the resources filename the window geometry is stored under
const windowFile = "window"

func onWindowOpen() (windowGeometry, error) {
	var geom windowGeometry

	s, err := resources.Read(windowFile)
	if err != nil {
		return geom, err
	}

	// nothing stored yet. not an error, the window opens with defaults
	if s == "" {
		return geom, nil
	}

	n, err := fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return geom, err
	}
	if n != 4 {
		return geom, fmt.Errorf("stored window geometry is malformed")
	}

	if geom.valid() {
		ebiten.SetWindowPosition(geom.x, geom.y)
		ebiten.SetWindowSize(geom.w, geom.h)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(windowFile, s)
}
