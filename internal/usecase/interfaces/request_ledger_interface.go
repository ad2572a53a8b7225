package interfaces

import (
	"context"
	"salamatlab/internal/domain/entities"
)

// IRequestLedger is the per-user, append-only collection of submitted requests.
//
// Append is a full read-modify-write of the user's array. List never fails on
// absent or unreadable data; it degrades to an empty slice.
type IRequestLedger interface {
	Append(ctx context.Context, userID string, record entities.RequestRecord) error
	List(ctx context.Context, userID string) ([]entities.RequestRecord, error)
}
