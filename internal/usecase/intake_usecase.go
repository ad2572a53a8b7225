package usecase

import (
	"context"
	"errors"
	"log"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("intake session not found")
	ErrInvalidUserID   = errors.New("invalid user id")
)

const DefaultSessionTTL = 30 * time.Minute

// SessionView is the externally visible state of an intake session.
type SessionView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	SelectorSnapshot
}

// IIntakeUseCase drives intake sessions. Sessions live in memory only and are
// visible to the user that started them.
type IIntakeUseCase interface {
	StartSession(ctx context.Context, userID string, profile *entities.UserProfile) (SessionView, error)
	GetSession(ctx context.Context, userID, sessionID string) (SessionView, error)
	SelectFlow(ctx context.Context, userID, sessionID string, flow entities.RequestType) (SessionView, error)
	SelectCategory(ctx context.Context, userID, sessionID string, flow entities.RequestType, category entities.PackageCategoryKey) (entities.WizardState, error)
	SelectPackage(ctx context.Context, userID, sessionID string, flow entities.RequestType, packageRef string) (entities.WizardState, error)
	UpdateFields(ctx context.Context, userID, sessionID string, flow entities.RequestType, fields map[string]string) (entities.WizardState, error)
	Next(ctx context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error)
	Back(ctx context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error)
	Submit(ctx context.Context, userID, sessionID string, flow entities.RequestType) (entities.RequestRecord, entities.WizardState, error)
	Reset(ctx context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error)
	RequestService(ctx context.Context, userID, sessionID string) (entities.RequestRecord, entities.WizardState, error)
}

type intakeSession struct {
	id       string
	userID   string
	selector *ServiceSelector
	lastSeen time.Time
}

type IntakeUseCase struct {
	catalog   interfaces.IPackageCatalog
	submitter IRequestSubmitter
	prefiller *ProfilePrefiller
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*intakeSession
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(catalog interfaces.IPackageCatalog, submitter IRequestSubmitter, prefiller *ProfilePrefiller, ttl time.Duration) *IntakeUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &IntakeUseCase{
		catalog:   catalog,
		submitter: submitter,
		prefiller: prefiller,
		ttl:       ttl,
		now:       time.Now,
		sessions:  map[string]*intakeSession{},
	}
}

func (u *IntakeUseCase) StartSession(_ context.Context, userID string, profile *entities.UserProfile) (SessionView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return SessionView{}, ErrInvalidUserID
	}

	s := &intakeSession{
		id:       uuid.NewString(),
		userID:   userID,
		selector: NewServiceSelector(userID, profile, u.catalog, u.submitter, u.prefiller),
		lastSeen: u.now(),
	}

	u.mu.Lock()
	u.evictExpiredLocked()
	u.sessions[s.id] = s
	u.mu.Unlock()

	log.Printf("[intake][usecase] session started session_id=%s user_id=%s prefilled=%t", s.id, userID, profile != nil)
	return u.view(s), nil
}

func (u *IntakeUseCase) GetSession(_ context.Context, userID, sessionID string) (SessionView, error) {
	s, err := u.lookup(userID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return u.view(s), nil
}

func (u *IntakeUseCase) SelectFlow(_ context.Context, userID, sessionID string, flow entities.RequestType) (SessionView, error) {
	s, err := u.lookup(userID, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := s.selector.Select(flow); err != nil {
		return SessionView{}, err
	}
	return u.view(s), nil
}

func (u *IntakeUseCase) SelectCategory(_ context.Context, userID, sessionID string, flow entities.RequestType, category entities.PackageCategoryKey) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, func(w *Wizard) error {
		return w.SelectCategory(category)
	})
}

func (u *IntakeUseCase) SelectPackage(_ context.Context, userID, sessionID string, flow entities.RequestType, packageRef string) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, func(w *Wizard) error {
		return w.SelectPackage(packageRef)
	})
}

func (u *IntakeUseCase) UpdateFields(_ context.Context, userID, sessionID string, flow entities.RequestType, fields map[string]string) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, func(w *Wizard) error {
		return w.SetFields(fields)
	})
}

func (u *IntakeUseCase) Next(_ context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, (*Wizard).Next)
}

func (u *IntakeUseCase) Back(_ context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, (*Wizard).Back)
}

func (u *IntakeUseCase) Reset(_ context.Context, userID, sessionID string, flow entities.RequestType) (entities.WizardState, error) {
	return u.mutate(userID, sessionID, flow, (*Wizard).Reset)
}

func (u *IntakeUseCase) Submit(ctx context.Context, userID, sessionID string, flow entities.RequestType) (entities.RequestRecord, entities.WizardState, error) {
	s, err := u.lookup(userID, sessionID)
	if err != nil {
		return entities.RequestRecord{}, entities.WizardState{}, err
	}
	w, err := s.selector.Wizard(flow)
	if err != nil {
		return entities.RequestRecord{}, entities.WizardState{}, err
	}
	log.Printf("[intake][usecase] submit start session_id=%s user_id=%s flow=%s", sessionID, s.userID, flow)
	record, err := w.Submit(ctx)
	if err != nil {
		return entities.RequestRecord{}, w.Snapshot(), err
	}
	return record, w.Snapshot(), nil
}

func (u *IntakeUseCase) RequestService(ctx context.Context, userID, sessionID string) (entities.RequestRecord, entities.WizardState, error) {
	s, err := u.lookup(userID, sessionID)
	if err != nil {
		return entities.RequestRecord{}, entities.WizardState{}, err
	}
	return u.Submit(ctx, userID, sessionID, s.selector.Active())
}

func (u *IntakeUseCase) mutate(userID, sessionID string, flow entities.RequestType, op func(*Wizard) error) (entities.WizardState, error) {
	s, err := u.lookup(userID, sessionID)
	if err != nil {
		return entities.WizardState{}, err
	}
	w, err := s.selector.Wizard(flow)
	if err != nil {
		return entities.WizardState{}, err
	}
	if err := op(w); err != nil {
		return w.Snapshot(), err
	}
	return w.Snapshot(), nil
}

// lookup resolves a live session owned by userID and refreshes its idle timer.
// Sessions of other users are reported as not found.
func (u *IntakeUseCase) lookup(userID, sessionID string) (*intakeSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[strings.TrimSpace(sessionID)]
	if !ok || s.userID != userID {
		return nil, ErrSessionNotFound
	}
	now := u.now()
	if now.Sub(s.lastSeen) > u.ttl {
		delete(u.sessions, s.id)
		return nil, ErrSessionNotFound
	}
	s.lastSeen = now
	return s, nil
}

func (u *IntakeUseCase) evictExpiredLocked() {
	now := u.now()
	for id, s := range u.sessions {
		if now.Sub(s.lastSeen) > u.ttl {
			delete(u.sessions, id)
		}
	}
}

func (u *IntakeUseCase) view(s *intakeSession) SessionView {
	u.mu.Lock()
	expires := s.lastSeen.Add(u.ttl)
	u.mu.Unlock()
	return SessionView{
		ID:               s.id,
		UserID:           s.userID,
		ExpiresAt:        expires.UTC(),
		SelectorSnapshot: s.selector.Snapshot(),
	}
}
