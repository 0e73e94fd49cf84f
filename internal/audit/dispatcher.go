package audit

import "github.com/rs/zerolog"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder persists a single audit entry.
type Recorder interface {
	Log(userID *uint, action string, entity string, entityID *uint, metadata any) error
}

// Dispatcher decouples audit writes from request handling: events go onto a
// buffered channel and a single worker persists them. A full queue drops
// the event, auditing must never take the API down.
type Dispatcher struct {
	recorder Recorder
	queue    chan Event
	log      zerolog.Logger
}

func NewDispatcher(recorder Recorder, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100),
		log:      log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
