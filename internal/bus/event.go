package bus

import "time"

// Action kinds published by the shell and its screens.
const (
	KindTick      = "shell.tick"
	KindQuit      = "shell.quit"
	KindMoved     = "menu.moved"
	KindActivated = "menu.activated"
)

// Event is an action travelling from a screen or the shell to whoever listens.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Selection is the payload of menu.moved and menu.activated.
type Selection struct {
	Index int
	Label string
}

// Sender is the outbound half of the bus handed to screens.
type Sender interface {
	Publish(evt Event)
}
