package usecase

import (
	"errors"
	"testing"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
)

func TestFormatPrice(t *testing.T) {
	tests := map[string]string{
		"۸۵۰,۰۰۰":   "۸۵۰٬۰۰۰ تومان",
		"۱,۲۵۰,۰۰۰": "۱٬۲۵۰٬۰۰۰ تومان",
		"۵۰۰":       "۵۰۰ تومان",
	}
	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestCatalogUseCase(t *testing.T) {
	uc := NewCatalogUseCase(catalog.NewStaticCatalog())

	if got := uc.Categories(); len(got) != 4 || got[0].Key != entities.CategoryGeneral {
		t.Fatalf("unexpected categories: %+v", got)
	}
	pkgs, err := uc.Packages(entities.CategoryWomen)
	if err != nil || len(pkgs) == 0 {
		t.Fatalf("expected women packages, got %d err=%v", len(pkgs), err)
	}
	if _, err := uc.Packages("dental"); !errors.Is(err, ErrUnknownCategoryKey) {
		t.Fatalf("expected ErrUnknownCategoryKey, got %v", err)
	}
	if len(uc.SamplingPackages()) != 4 {
		t.Fatalf("expected 4 sampling packages")
	}
	if slots := uc.TimeSlots(); len(slots) != 20 || slots[0] != "08:00" || slots[19] != "17:30" {
		t.Fatalf("unexpected slots: %v", slots)
	}
}
