package io

type Action int

type Input struct {
	Action  Action
	Release bool
}

const (
	Nothing Action = iota
	OriginLeft
	OriginUp
	OriginRight
	OriginDown
	TogglePause
	ToggleVramView
	Screenshot
)
