package usecase

import (
	"context"
	"testing"
	"time"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
)

func TestRequestComposer_Compose(t *testing.T) {
	c := NewRequestComposer()
	fixed := time.Date(2024, 10, 1, 12, 30, 0, 0, time.FixedZone("IRST", 12600))
	c.now = func() time.Time { return fixed }

	pkg, _ := catalog.NewStaticCatalog().FindPackage("general_post_puberty")
	state := entities.WizardState{Fields: entities.Fields{entities.FieldPreferredDate: "2024-10-01"}}

	r := c.Compose(entities.RequestTypeCheckup, state, pkg, "u1")
	if r.ID == "" || r.Status != entities.RequestStatusPending || r.UserID != "u1" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.CreatedAt.Equal(fixed) || r.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC creation time, got %v", r.CreatedAt)
	}
	if r.Package.Title != pkg.Title || r.Package.Price != pkg.Price || r.Package.Category != entities.CategoryGeneral {
		t.Fatalf("unexpected package snapshot: %+v", r.Package)
	}

	state.Fields[entities.FieldPreferredDate] = "changed"
	if r.Fields[entities.FieldPreferredDate] != "2024-10-01" {
		t.Fatalf("expected fields to be copied")
	}

	other := c.Compose(entities.RequestTypeCheckup, state, pkg, "u1")
	if other.ID == r.ID {
		t.Fatalf("expected unique ids")
	}
}

func TestRequestComposer_LedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger := newLedger()
	c := NewRequestComposer()
	pkg, _ := catalog.NewStaticCatalog().SamplingPackage(0)
	state := entities.WizardState{Fields: entities.Fields{
		entities.FieldFullName:     "علی محمدی",
		entities.FieldNeighborhood: "شهرقدس",
	}}

	first := c.Compose(entities.RequestTypeSampling, state, pkg, "u1")
	second := c.Compose(entities.RequestTypeSampling, state, pkg, "u1")
	_ = ledger.Append(ctx, "u1", first)
	_ = ledger.Append(ctx, "u1", second)

	got, _ := ledger.List(ctx, "u1")
	if len(got) != 2 || got[0].ID == got[1].ID {
		t.Fatalf("expected two records with distinct ids, got %+v", got)
	}
	r := got[0]
	if r.Type != entities.RequestTypeSampling || r.Package != first.Package || r.UserID != "u1" {
		t.Fatalf("record did not round-trip: %+v", r)
	}
	for k, v := range state.Fields {
		if r.Fields[k] != v {
			t.Fatalf("field %s: expected %q, got %q", k, v, r.Fields[k])
		}
	}
	if !r.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at to round-trip")
	}

	if other, _ := ledger.List(ctx, "u2"); len(other) != 0 {
		t.Fatalf("expected u2 to see nothing, got %d", len(other))
	}
}
