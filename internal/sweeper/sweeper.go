package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	ucBooking "github.com/miamente/miamente-sub002/internal/usecase/booking"
)

// Sweeper runs the hold-expiry cleanup on a cron cadence. Errors are
// logged and the run abandoned; the staleness query makes the next
// run pick the same slots up again.
type Sweeper struct {
	cleanup   *ucBooking.CleanupHeldSlots
	log       *zap.Logger
	cron      *cron.Cron
	spec      string
	batchSize int
}

func New(
	cleanup *ucBooking.CleanupHeldSlots,
	log *zap.Logger,
	spec string,
	batchSize int,
) *Sweeper {
	return &Sweeper{
		cleanup:   cleanup,
		log:       log,
		cron:      cron.New(),
		spec:      spec,
		batchSize: batchSize,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()

	s.log.Info("hold-expiry sweeper started", zap.String("spec", s.spec))
	return nil
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cleaned, err := s.cleanup.Execute(ctx, s.batchSize)
	if err != nil {
		s.log.Error("hold-expiry sweep failed", zap.Error(err))
		return
	}

	if cleaned > 0 {
		s.log.Info("hold-expiry sweep done", zap.Int("cleaned", cleaned))
	}
}
