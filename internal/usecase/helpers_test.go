package usecase

import (
	"testing"

	"salamatlab/internal/adapter/persistence/kvstore"
	"salamatlab/internal/adapter/persistence/repository"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
	"salamatlab/internal/usecase/interfaces"
)

func newLedger() *repository.RequestLedgerRepository {
	return repository.NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")
}

func newCheckupWizard(submitter IRequestSubmitter) *Wizard {
	seed := NewProfilePrefiller().Seed(entities.RequestTypeCheckup, nil)
	return NewWizard(entities.RequestTypeCheckup, "u1", catalog.NewStaticCatalog(), submitter, seed)
}

func newSamplingWizard(submitter IRequestSubmitter, profile *entities.UserProfile) *Wizard {
	seed := NewProfilePrefiller().Seed(entities.RequestTypeSampling, profile)
	return NewWizard(entities.RequestTypeSampling, "u1", catalog.NewStaticCatalog(), submitter, seed)
}

func newSubmitter(gateway interfaces.ISubmissionGateway, ledger interfaces.IRequestLedger) *RequestSubmitter {
	return NewRequestSubmitter(NewRequestComposer(), gateway, ledger)
}

var validCheckupFields = map[string]string{
	entities.FieldPreferredDate:    "2024-10-01",
	entities.FieldPreferredTime:    "10:00",
	entities.FieldLocation:         LocationClinic,
	entities.FieldEmergencyContact: "09123456789",
}

// toConfirmation drives a checkup wizard to the confirmation step.
func toConfirmation(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.SelectPackage("general_post_puberty"); err != nil {
		t.Fatalf("select package: %v", err)
	}
	if err := w.SetFields(validCheckupFields); err != nil {
		t.Fatalf("set fields: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
}
