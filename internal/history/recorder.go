// Package history persists menu activations published on the bus.
package history

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/arcade/internal/bus"
	"github.com/matheus3301/arcade/internal/store"
	"go.uber.org/zap"
)

// Store is the slice of store.DB the recorder writes to.
type Store interface {
	RecordActivation(label string, index int, at time.Time) (*store.Activation, error)
}

// Recorder subscribes to "menu." actions and stores every activation.
type Recorder struct {
	db     Store
	bus    *bus.Bus
	logger *zap.Logger

	mu         sync.Mutex
	onRecorded func(*store.Activation)
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewRecorder creates a new activation recorder.
func NewRecorder(db Store, b *bus.Bus, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		db:     db,
		bus:    b,
		logger: logger,
	}
}

// SetOnRecorded sets a callback run after each stored activation.
func (r *Recorder) SetOnRecorded(fn func(*store.Activation)) {
	r.mu.Lock()
	r.onRecorded = fn
	r.mu.Unlock()
}

// Start begins consuming activations until Stop or ctx is done.
func (r *Recorder) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	ch, unsub := r.bus.Subscribe(bus.KindActivated, 64)

	go func() {
		defer close(r.done)
		defer unsub()
		for {
			select {
			case evt := <-ch:
				r.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the recorder and waits for the consumer to exit.
func (r *Recorder) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (r *Recorder) handleEvent(evt bus.Event) {
	if evt.Kind != bus.KindActivated {
		return
	}
	sel, ok := evt.Payload.(bus.Selection)
	if !ok {
		r.logger.Warn("activation without selection payload", zap.Any("payload", evt.Payload))
		return
	}
	if _, err := r.Record(sel, evt.Timestamp); err != nil {
		r.logger.Error("failed to record activation", zap.Error(err), zap.String("label", sel.Label))
	}
}

// Record stores one activation and notifies the callback.
func (r *Recorder) Record(sel bus.Selection, at time.Time) (*store.Activation, error) {
	if at.IsZero() {
		at = time.Now()
	}
	a, err := r.db.RecordActivation(sel.Label, sel.Index, at)
	if err != nil {
		return nil, err
	}
	r.logger.Info("activation recorded", zap.String("label", a.Label), zap.String("id", a.ID))

	r.mu.Lock()
	fn := r.onRecorded
	r.mu.Unlock()
	if fn != nil {
		fn(a)
	}
	return a, nil
}
