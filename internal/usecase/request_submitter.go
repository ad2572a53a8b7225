package usecase

import (
	"context"
	"log"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
)

// RequestSubmitter composes a record, passes it through the backend gateway
// and appends it to the user's ledger. No retries.
type RequestSubmitter struct {
	composer *RequestComposer
	gateway  interfaces.ISubmissionGateway
	ledger   interfaces.IRequestLedger
}

var _ IRequestSubmitter = (*RequestSubmitter)(nil)

func NewRequestSubmitter(composer *RequestComposer, gateway interfaces.ISubmissionGateway, ledger interfaces.IRequestLedger) *RequestSubmitter {
	return &RequestSubmitter{composer: composer, gateway: gateway, ledger: ledger}
}

func (s *RequestSubmitter) Submit(ctx context.Context, flow entities.RequestType, state entities.WizardState, pkg entities.Package, userID string) (entities.RequestRecord, error) {
	record := s.composer.Compose(flow, state, pkg, userID)

	if s.gateway != nil {
		if err := s.gateway.Submit(ctx, record); err != nil {
			log.Printf("[intake][submitter] gateway failed request_id=%s user_id=%s err=%v", record.ID, userID, err)
			return entities.RequestRecord{}, &SubmissionError{Cause: err}
		}
	}

	if err := s.ledger.Append(ctx, userID, record); err != nil {
		log.Printf("[intake][submitter] ledger append failed request_id=%s user_id=%s err=%v", record.ID, userID, err)
		return entities.RequestRecord{}, &SubmissionError{Cause: err}
	}
	return record, nil
}
