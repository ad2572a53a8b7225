package usecase

import (
	"salamatlab/internal/domain/entities"
	"time"

	"github.com/google/uuid"
)

// RequestComposer builds immutable request records from a finished wizard.
type RequestComposer struct {
	now   func() time.Time
	newID func() string
}

func NewRequestComposer() *RequestComposer {
	return &RequestComposer{now: time.Now, newID: newRequestID}
}

// Compose copies the package as a snapshot, so later catalog changes do not
// alter the record.
func (c *RequestComposer) Compose(flow entities.RequestType, state entities.WizardState, pkg entities.Package, userID string) entities.RequestRecord {
	return entities.RequestRecord{
		ID:   c.newID(),
		Type: flow,
		Package: entities.PackageSnapshot{
			ID:          pkg.ID,
			Category:    pkg.Category,
			Title:       pkg.Title,
			Description: pkg.Description,
			Price:       pkg.Price,
		},
		Fields:    state.Fields.Clone(),
		Status:    entities.RequestStatusPending,
		CreatedAt: c.now().UTC(),
		UserID:    userID,
	}
}

// newRequestID returns a UUIDv7, whose leading bits are the creation time.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
