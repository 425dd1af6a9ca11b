package ui

import (
	"github.com/matheus3301/arcade/internal/bus"
	"github.com/matheus3301/arcade/internal/config"
)

// MenuHint describes a keyboard shortcut for display in the status bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is the lifecycle interface for all TUI views.
type Component interface {
	Name() string
	Init()
	Start()
	Stop()
	Hints() []MenuHint
}

// Screen is a Component the shell also feeds actions, config and ticks.
type Screen interface {
	Component
	RegisterActionHandler(tx bus.Sender)
	RegisterConfig(cfg *config.Config)
	Tick()
}
