// Package saga runs a multi-step workflow against independent stores with no
// shared transaction: an ordered list of steps, each with an optional
// compensating action, unwound in reverse when a later step fails.
package saga

import (
	"context"
	"fmt"
	"log"
)

type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type Saga struct {
	steps []Step
}

func New(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

// Execute runs every step in order. On the first failure, the compensations
// of the already-completed steps run in reverse order and the step's error is
// returned. Compensation failures are logged, never returned: the original
// failure is what the caller must see.
func (s *Saga) Execute(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			s.unwind(ctx, i-1)
			return fmt.Errorf("saga step %s: %w", step.Name, err)
		}
	}
	return nil
}

func (s *Saga) unwind(ctx context.Context, from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			log.Printf("saga: compensation of %s failed: %v", step.Name, err)
		}
	}
}
