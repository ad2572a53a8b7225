package interfaces

import (
	"context"
	"salamatlab/internal/domain/entities"
)

// ISubmissionGateway stands in for the backend write that accepts a request
// before it is recorded in the ledger.
type ISubmissionGateway interface {
	Submit(ctx context.Context, record entities.RequestRecord) error
}
