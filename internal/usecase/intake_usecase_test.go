package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
)

func newIntake(ttl time.Duration) (*IntakeUseCase, *time.Time) {
	uc := NewIntakeUseCase(catalog.NewStaticCatalog(), newSubmitter(nil, newLedger()), NewProfilePrefiller(), ttl)
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	return uc, &now
}

func TestIntakeUseCase_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, _ := newIntake(time.Minute)

	if _, err := uc.StartSession(ctx, " ", nil); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}

	view, err := uc.StartSession(ctx, "u1", &entities.UserProfile{Phone: "0912"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID == "" || view.UserID != "u1" || view.Active != entities.RequestTypeCheckup {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Checkup.Fields[entities.FieldPhone] != "0912" {
		t.Fatalf("expected prefilled phone, got %q", view.Checkup.Fields[entities.FieldPhone])
	}

	if _, err := uc.GetSession(ctx, "u2", view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected other users to get ErrSessionNotFound, got %v", err)
	}

	if _, err := uc.SelectPackage(ctx, "u1", view.ID, entities.RequestTypeCheckup, "general_post_puberty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.UpdateFields(ctx, "u1", view.ID, entities.RequestTypeCheckup, validCheckupFields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st, err := uc.Next(ctx, "u1", view.ID, entities.RequestTypeCheckup)
	if err != nil || st.Step != entities.StepConfirmation {
		t.Fatalf("expected confirmation, got %s err=%v", st.Step, err)
	}

	rec, st, err := uc.RequestService(ctx, "u1", view.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Step != entities.StepSuccess || st.LastSubmittedID != rec.ID {
		t.Fatalf("unexpected state after submit: %+v", st)
	}

	st, err = uc.Reset(ctx, "u1", view.ID, entities.RequestTypeCheckup)
	if err != nil || st.Step != entities.StepPackageSelection {
		t.Fatalf("expected reset, got %s err=%v", st.Step, err)
	}
}

func TestIntakeUseCase_ErrorsReturnCurrentState(t *testing.T) {
	ctx := context.Background()
	uc, _ := newIntake(time.Minute)
	view, _ := uc.StartSession(ctx, "u1", nil)

	st, err := uc.Next(ctx, "u1", view.ID, entities.RequestTypeSampling)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if st.Flow != entities.RequestTypeSampling || st.Step != entities.StepPackageSelection {
		t.Fatalf("expected current sampling state, got %+v", st)
	}

	if _, err := uc.SelectCategory(ctx, "u1", view.ID, "dental", entities.CategoryGeneral); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
	if _, err := uc.SelectFlow(ctx, "u1", view.ID, "dental"); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
	if _, _, err := uc.Submit(ctx, "u1", "missing", entities.RequestTypeCheckup); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	v, err := uc.SelectFlow(ctx, "u1", view.ID, entities.RequestTypeSampling)
	if err != nil || v.Active != entities.RequestTypeSampling {
		t.Fatalf("expected sampling active, got %s err=%v", v.Active, err)
	}
	st, err = uc.Back(ctx, "u1", view.ID, entities.RequestTypeSampling)
	if !errors.Is(err, ErrInvalidTransition) || st.Step != entities.StepPackageSelection {
		t.Fatalf("expected invalid back, got %s err=%v", st.Step, err)
	}
}

func TestIntakeUseCase_IdleSessionsExpire(t *testing.T) {
	ctx := context.Background()
	uc, now := newIntake(time.Minute)
	view, _ := uc.StartSession(ctx, "u1", nil)
	if !view.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("unexpected expiry %v", view.ExpiresAt)
	}

	*now = now.Add(50 * time.Second)
	if _, err := uc.GetSession(ctx, "u1", view.ID); err != nil {
		t.Fatalf("expected session to be alive, got %v", err)
	}

	*now = now.Add(50 * time.Second)
	if _, err := uc.GetSession(ctx, "u1", view.ID); err != nil {
		t.Fatalf("expected access to refresh the idle timer, got %v", err)
	}

	*now = now.Add(2 * time.Minute)
	if _, err := uc.GetSession(ctx, "u1", view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}
