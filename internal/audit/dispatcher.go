package audit

import (
	"log"

	"github.com/google/uuid"
)

type Event struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks an action; when the queue is full the event is
// dropped. A nil dispatcher drops everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
