package usecase

import (
	"context"
	"errors"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"strings"
	"sync"
)

var ErrUnknownFlow = errors.New("unknown request flow")

// ProfileSummary is the read-only profile card shown next to the wizards.
type ProfileSummary struct {
	FullName       string            `json:"full_name"`
	Phone          string            `json:"phone"`
	NationalID     string            `json:"national_id"`
	City           string            `json:"city"`
	DefaultAddress *entities.Address `json:"default_address,omitempty"`
}

// SelectorSnapshot is a consistent read of both wizards.
type SelectorSnapshot struct {
	Active   entities.RequestType `json:"active"`
	Profile  ProfileSummary       `json:"profile"`
	Checkup  entities.WizardState `json:"checkup"`
	Sampling entities.WizardState `json:"sampling"`
}

// ServiceSelector puts the checkup and sampling wizards behind one tab
// switch. The wizards never share state and switching never resets them.
type ServiceSelector struct {
	profile  ProfileSummary
	checkup  *Wizard
	sampling *Wizard

	mu     sync.RWMutex
	active entities.RequestType
}

func NewServiceSelector(userID string, profile *entities.UserProfile, catalog interfaces.IPackageCatalog, submitter IRequestSubmitter, prefiller *ProfilePrefiller) *ServiceSelector {
	return &ServiceSelector{
		profile:  summarizeProfile(profile),
		checkup:  NewWizard(entities.RequestTypeCheckup, userID, catalog, submitter, prefiller.Seed(entities.RequestTypeCheckup, profile)),
		sampling: NewWizard(entities.RequestTypeSampling, userID, catalog, submitter, prefiller.Seed(entities.RequestTypeSampling, profile)),
		active:   entities.RequestTypeCheckup,
	}
}

func (s *ServiceSelector) Select(flow entities.RequestType) error {
	if !flow.Valid() {
		return ErrUnknownFlow
	}
	s.mu.Lock()
	s.active = flow
	s.mu.Unlock()
	return nil
}

func (s *ServiceSelector) Active() entities.RequestType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *ServiceSelector) Wizard(flow entities.RequestType) (*Wizard, error) {
	switch flow {
	case entities.RequestTypeCheckup:
		return s.checkup, nil
	case entities.RequestTypeSampling:
		return s.sampling, nil
	default:
		return nil, ErrUnknownFlow
	}
}

// RequestService submits whichever wizard is currently selected.
func (s *ServiceSelector) RequestService(ctx context.Context) (entities.RequestRecord, error) {
	w, err := s.Wizard(s.Active())
	if err != nil {
		return entities.RequestRecord{}, err
	}
	return w.Submit(ctx)
}

func (s *ServiceSelector) Profile() ProfileSummary {
	return s.profile
}

func (s *ServiceSelector) Snapshot() SelectorSnapshot {
	return SelectorSnapshot{
		Active:   s.Active(),
		Profile:  s.profile,
		Checkup:  s.checkup.Snapshot(),
		Sampling: s.sampling.Snapshot(),
	}
}

func summarizeProfile(profile *entities.UserProfile) ProfileSummary {
	if profile == nil {
		return ProfileSummary{}
	}
	sum := ProfileSummary{
		FullName:   fullName(profile),
		Phone:      strings.TrimSpace(profile.Phone),
		NationalID: strings.TrimSpace(profile.NationalID),
		City:       strings.TrimSpace(profile.City),
	}
	if addr, ok := ResolveDefaultAddress(profile.Addresses); ok {
		sum.DefaultAddress = &addr
	}
	return sum
}
