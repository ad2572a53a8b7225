package response

import (
	"time"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
)

type WizardStateResponse struct {
	Flow            string            `json:"flow"`
	Step            string            `json:"step"`
	Category        string            `json:"category,omitempty"`
	Package         *PackageResponse  `json:"package,omitempty"`
	Fields          map[string]string `json:"fields"`
	RequiredFields  []string          `json:"required_fields"`
	Submitting      bool              `json:"submitting"`
	LastSubmittedID string            `json:"last_submitted_id,omitempty"`
}

type SessionResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	ExpiresAt time.Time              `json:"expires_at"`
	Active    string                 `json:"active"`
	Profile   usecase.ProfileSummary `json:"profile"`
	Checkup   WizardStateResponse    `json:"checkup"`
	Sampling  WizardStateResponse    `json:"sampling"`
}

type SubmitResponse struct {
	Request RequestRecordResponse `json:"request"`
	State   WizardStateResponse   `json:"state"`
}

func FromWizardState(s entities.WizardState) WizardStateResponse {
	fields := map[string]string(s.Fields.Clone())
	if fields == nil {
		fields = map[string]string{}
	}
	out := WizardStateResponse{
		Flow:            string(s.Flow),
		Step:            s.Step.String(),
		Category:        string(s.Category),
		Fields:          fields,
		RequiredFields:  usecase.RequiredFields(s.Flow),
		Submitting:      s.Submitting,
		LastSubmittedID: s.LastSubmittedID,
	}
	if s.Package != nil {
		p := FromPackage(*s.Package)
		out.Package = &p
	}
	return out
}

func FromSession(v usecase.SessionView) SessionResponse {
	return SessionResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		ExpiresAt: v.ExpiresAt,
		Active:    string(v.Active),
		Profile:   v.Profile,
		Checkup:   FromWizardState(v.Checkup),
		Sampling:  FromWizardState(v.Sampling),
	}
}

func FromSubmission(r entities.RequestRecord, s entities.WizardState) SubmitResponse {
	return SubmitResponse{
		Request: FromRequestRecord(r, false),
		State:   FromWizardState(s),
	}
}
