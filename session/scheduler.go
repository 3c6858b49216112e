package session

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
)

// ErrGenerationLimit is returned by Run once MaxGenerations steps were taken
var ErrGenerationLimit = errors.New("generation limit reached")

// Scheduler advances the game one generation per tick. Tick and Step may be
// called from any goroutine; Run must be called at most once at a time.
type Scheduler struct {
	Emitter        Emitter
	Interval       time.Duration
	MaxGenerations int // 0 means unlimited
	Logger         *slog.Logger

	steps atomic.Int64
}

// NewScheduler returns a Scheduler ticking every interval
func NewScheduler(e Emitter, interval time.Duration, maxGenerations int, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		Emitter:        e,
		Interval:       interval,
		MaxGenerations: maxGenerations,
		Logger:         logger,
	}
}

// Tick applies one generation unless the game is stopped or dead. It
// reports whether a generation was published.
func (s *Scheduler) Tick() (bool, error) {
	return s.advance(false)
}

// Step applies one generation even when the game is stopped
func (s *Scheduler) Step() error {
	_, err := s.advance(true)
	return err
}

func (s *Scheduler) advance(force bool) (bool, error) {
	stepped, err := s.Emitter.Emit(MatrixChange, func(st *State) error {
		if !force && st.Paused() {
			return ErrNoChange
		}
		rule := st.Rule
		matrix, summary, err := model.BuildMatrix(model.StepwiseReducer{
			Matrix:     st.Matrix,
			BorderMode: st.BorderMode,
			Rule:       &rule,
		})
		if err != nil {
			return errors.Wrap(err, "[Scheduler.advance]")
		}
		st.Matrix, st.MatrixState = matrix, summary
		st.StepCount++
		return nil
	})
	if stepped {
		s.steps.Add(1)
	}
	return stepped, err
}

// Run ticks until ctx is done, a tick fails or the generation limit is hit
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		stepped, err := s.Tick()
		if err != nil {
			return err
		}
		if !stepped {
			continue
		}

		if st := s.Emitter.State(); st.MatrixState == model.Dead {
			s.Logger.Info("population extinct, pausing", "step", st.StepCount)
		}
		if steps := s.steps.Load(); s.MaxGenerations > 0 && steps >= int64(s.MaxGenerations) {
			s.Logger.Info("generation limit reached", "generations", steps)
			return ErrGenerationLimit
		}
	}
}

// Generations returns the number of generations this scheduler published
func (s *Scheduler) Generations() int {
	return int(s.steps.Load())
}
