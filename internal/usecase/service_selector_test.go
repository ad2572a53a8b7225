package usecase

import (
	"context"
	"errors"
	"testing"

	"salamatlab/internal/adapter/persistence/repository"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
)

func newSelector(profile *entities.UserProfile) (*ServiceSelector, *repository.RequestLedgerRepository) {
	ledger := newLedger()
	return NewServiceSelector("u1", profile, catalog.NewStaticCatalog(), newSubmitter(nil, ledger), NewProfilePrefiller()), ledger
}

func TestServiceSelector_FlowsAreIndependent(t *testing.T) {
	s, _ := newSelector(nil)
	if s.Active() != entities.RequestTypeCheckup {
		t.Fatalf("expected checkup to be active by default")
	}

	checkup, _ := s.Wizard(entities.RequestTypeCheckup)
	if err := checkup.SelectPackage("general_post_puberty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = checkup.SetFields(map[string]string{entities.FieldPreferredTime: "10:00"})

	if err := s.Select(entities.RequestTypeSampling); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap.Active != entities.RequestTypeSampling {
		t.Fatalf("expected sampling to be active")
	}
	if snap.Sampling.Step != entities.StepPackageSelection || snap.Sampling.Package != nil {
		t.Fatalf("sampling wizard must be untouched, got %+v", snap.Sampling)
	}

	_ = s.Select(entities.RequestTypeCheckup)
	snap = s.Snapshot()
	if snap.Checkup.Step != entities.StepDetailEntry || snap.Checkup.Fields[entities.FieldPreferredTime] != "10:00" {
		t.Fatalf("switching tabs must not reset checkup, got %+v", snap.Checkup)
	}

	if err := s.Select("dental"); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
	if _, err := s.Wizard("dental"); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
}

func TestServiceSelector_RequestServiceUsesActiveFlow(t *testing.T) {
	ctx := context.Background()
	s, ledger := newSelector(nil)
	checkup, _ := s.Wizard(entities.RequestTypeCheckup)
	toConfirmation(t, checkup)

	_ = s.Select(entities.RequestTypeSampling)
	if _, err := s.RequestService(ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected sampling wizard to refuse submit, got %v", err)
	}

	_ = s.Select(entities.RequestTypeCheckup)
	rec, err := s.RequestService(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != entities.RequestTypeCheckup {
		t.Fatalf("expected checkup record, got %s", rec.Type)
	}
	got, _ := ledger.List(ctx, "u1")
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
}

func TestServiceSelector_ProfileSummary(t *testing.T) {
	s, _ := newSelector(&entities.UserProfile{
		FirstName: "سارا",
		LastName:  "احمدی",
		City:      "تهران",
		Addresses: []entities.Address{{ID: "1", Address: "تهران، شهرقدس، خیابان شهید بهشتی، پلاک ۱۲۳"}},
	})

	p := s.Profile()
	if p.FullName != "سارا احمدی" || p.DefaultAddress == nil || p.DefaultAddress.ID != "1" {
		t.Fatalf("unexpected profile summary: %+v", p)
	}

	sampling, _ := s.Wizard(entities.RequestTypeSampling)
	if f := sampling.Snapshot().Fields; f[entities.FieldNeighborhood] != "شهرقدس" || f[entities.FieldPlaque] != "۱۲۳" {
		t.Fatalf("expected prefilled address fields, got %v", f)
	}

	empty, _ := newSelector(nil)
	if empty.Profile().DefaultAddress != nil {
		t.Fatalf("expected no default address without profile")
	}
}
