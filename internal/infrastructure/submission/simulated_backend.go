package submission

import (
	"context"
	"errors"
	"log"
	"time"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
)

var ErrSimulatedBackendFailure = errors.New("simulated backend rejected the request")

// SimulatedBackend stands in for the real intake backend: it waits a fixed
// delay and then accepts (or, in fail mode, rejects) the request.
type SimulatedBackend struct {
	delay time.Duration
	fail  bool
	sleep func(time.Duration)
}

var _ interfaces.ISubmissionGateway = (*SimulatedBackend)(nil)

func NewSimulatedBackend(delay time.Duration, fail bool) *SimulatedBackend {
	if fail {
		log.Printf("[intake][backend] failure mode enabled")
	}
	return &SimulatedBackend{delay: delay, fail: fail, sleep: time.Sleep}
}

// Submit is not cancelable once started; the delay always runs to completion.
func (b *SimulatedBackend) Submit(_ context.Context, record entities.RequestRecord) error {
	log.Printf("[intake][backend] submit start request_id=%s type=%s delay=%s", record.ID, record.Type, b.delay)
	if b.delay > 0 {
		b.sleep(b.delay)
	}
	if b.fail {
		log.Printf("[intake][backend] submit rejected request_id=%s", record.ID)
		return ErrSimulatedBackendFailure
	}
	log.Printf("[intake][backend] submit accepted request_id=%s", record.ID)
	return nil
}
