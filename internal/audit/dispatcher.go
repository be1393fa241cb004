package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	ActionAppointmentCreated = "appointment.created"
	ActionAppointmentUpdated = "appointment.updated"
	ActionAppointmentDeleted = "appointment.deleted"
	ActionExportUploaded     = "export.uploaded"

	EntityAppointment = "appointment"
	EntityExport      = "export"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
	At       time.Time
}

// Sink recebe os eventos já fora da requisição.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher entrega eventos aos sinks numa goroutine própria.
// Auditoria nunca quebra a API: fila cheia descarta o evento.
type Dispatcher struct {
	log   zerolog.Logger
	sinks []Sink
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log zerolog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		log:   log.With().Str("component", "audit").Logger(),
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Log(ctx, ev); err != nil {
				d.log.Error().Err(err).Str("action", ev.Action).Msg("audit sink failed")
			}
			cancel()
		}
	}
}

// Dispatch aceita receptor nil (auditoria desligada).
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
