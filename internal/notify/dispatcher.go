package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LogPublisher is the fallback when no broker is configured: the
// intent is only logged, which keeps development setups broker-free.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, intent EmailIntent) error {
	p.log.Info("email intent",
		zap.String("kind", intent.Kind),
		zap.Uint("user_id", intent.UserID),
		zap.Uint("appointment_id", intent.AppointmentID),
	)
	return nil
}

// Dispatcher hands intents to the publisher off the request path.
// Publishing happens strictly after the booking transaction commits,
// and a publish failure never propagates back to the caller.
type Dispatcher struct {
	publisher Publisher
	log       *zap.Logger
	queue     chan EmailIntent
}

func NewDispatcher(publisher Publisher, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		log:       log,
		queue:     make(chan EmailIntent, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for intent := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.publisher.Publish(ctx, intent); err != nil {
			d.log.Error("email intent publish failed",
				zap.String("kind", intent.Kind),
				zap.Uint("appointment_id", intent.AppointmentID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch is safe on a nil dispatcher.
func (d *Dispatcher) Dispatch(intent EmailIntent) {
	if d == nil {
		return
	}

	select {
	case d.queue <- intent:
	default:
		d.log.Warn("email intent queue full, dropping intent",
			zap.String("kind", intent.Kind),
			zap.Uint("appointment_id", intent.AppointmentID),
		)
	}
}
