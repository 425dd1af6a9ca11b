package ui

import (
	"fmt"
	"sync"
	"time"
)

// FlashLevel represents the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashWarn
	FlashErr
)

// FlashMessage is a flash notification with a level and expiry.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// FlashModel holds the current transient notification.
type FlashModel struct {
	mu      sync.RWMutex
	current FlashMessage
	now     func() time.Time
	watchCh chan FlashMessage
}

// NewFlashModel creates a new flash model.
func NewFlashModel() *FlashModel {
	return &FlashModel{
		now:     time.Now,
		watchCh: make(chan FlashMessage, 8),
	}
}

// Info sets an info-level flash message.
func (f *FlashModel) Info(msg string) { f.set(msg, FlashInfo, 5*time.Second) }

// Warn sets a warn-level flash message.
func (f *FlashModel) Warn(msg string) { f.set(msg, FlashWarn, 8*time.Second) }

// Err sets an error-level flash message.
func (f *FlashModel) Err(err error) { f.set(err.Error(), FlashErr, 10*time.Second) }

func (f *FlashModel) set(msg string, level FlashLevel, d time.Duration) {
	f.mu.Lock()
	f.current = FlashMessage{Text: msg, Level: level, Expires: f.now().Add(d)}
	fm := f.current
	f.mu.Unlock()
	select {
	case f.watchCh <- fm:
	default:
	}
}

// Get returns the current flash message, or nil once it expired.
func (f *FlashModel) Get() *FlashMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current.Text == "" || f.now().After(f.current.Expires) {
		return nil
	}
	m := f.current
	return &m
}

// Watch returns a channel that receives every new flash message.
func (f *FlashModel) Watch() <-chan FlashMessage {
	return f.watchCh
}

// FormatFlash renders msg with its level color, or "" for nil.
func FormatFlash(theme *Theme, msg *FlashMessage) string {
	if msg == nil {
		return ""
	}
	color := theme.FlashInfoColor
	switch msg.Level {
	case FlashWarn:
		color = theme.FlashWarnColor
	case FlashErr:
		color = theme.FlashErrColor
	}
	return fmt.Sprintf("[%s]%s[-]", colorName(color), msg.Text)
}
