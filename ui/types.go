package ui

import "time"

// Messages

type tickMsg time.Time

// UI Modes

type uiMode int

const (
	normalMode uiMode = iota
	filterMode
	helpMode
)
