package usecase

import (
	"testing"

	"salamatlab/internal/domain/entities"
)

func TestDecomposeAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AddressParts
	}{
		{
			name: "legacy four segments",
			in:   "تهران، شهرقدس، خیابان شهید بهشتی، پلاک ۱۲۳",
			want: AddressParts{Neighborhood: "شهرقدس", Street: "خیابان شهید بهشتی", Plaque: "۱۲۳"},
		},
		{
			name: "with unit",
			in:   "تهران، ونک، خیابان ملاصدرا، پلاک ۱۵، واحد ۴",
			want: AddressParts{Neighborhood: "ونک", Street: "خیابان ملاصدرا", Plaque: "۱۵", Unit: "۴"},
		},
		{
			name: "single segment",
			in:   "تهران",
			want: AddressParts{},
		},
		{
			name: "empty",
			in:   "   ",
			want: AddressParts{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecomposeAddress(tt.in); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestResolveDefaultAddress(t *testing.T) {
	a := entities.Address{ID: "a", Title: "خانه"}
	b := entities.Address{ID: "b", Title: "محل کار", IsDefault: true}
	c := entities.Address{ID: "c"}

	if got, ok := ResolveDefaultAddress([]entities.Address{a, b, c}); !ok || got.ID != "b" {
		t.Fatalf("expected flagged default b, got %+v ok=%t", got, ok)
	}
	if got, ok := ResolveDefaultAddress([]entities.Address{a, c}); !ok || got.ID != "a" {
		t.Fatalf("expected first address a, got %+v ok=%t", got, ok)
	}
	if _, ok := ResolveDefaultAddress(nil); ok {
		t.Fatalf("expected no address for empty set")
	}
}

func TestProfilePrefiller_Prefill(t *testing.T) {
	p := NewProfilePrefiller()
	profile := &entities.UserProfile{
		FirstName:          "علی",
		LastName:           "محمدی",
		Phone:              "09121234567",
		NationalID:         "0012345678",
		City:               "تهران",
		HasBasicInsurance:  true,
		BasicInsuranceName: "تامین اجتماعی",
		Addresses: []entities.Address{
			{ID: "1", Title: "محل کار", Address: "تهران، ونک، خیابان ملاصدرا، پلاک ۱۵"},
			{ID: "2", Title: "خانه", Address: "تهران، شهرقدس، خیابان شهید بهشتی، پلاک ۱۲۳", PostalCode: "1234567890", IsDefault: true},
		},
	}

	t.Run("sampling uses default address", func(t *testing.T) {
		f := p.Prefill(entities.RequestTypeSampling, profile)
		want := map[string]string{
			entities.FieldFullName:      "علی محمدی",
			entities.FieldPhone:         "09121234567",
			entities.FieldNationalCode:  "0012345678",
			entities.FieldCity:          "تهران",
			entities.FieldHasInsurance:  "true",
			entities.FieldInsuranceName: "تامین اجتماعی",
			entities.FieldNeighborhood:  "شهرقدس",
			entities.FieldStreet:        "خیابان شهید بهشتی",
			entities.FieldPlaque:        "۱۲۳",
			entities.FieldPostalCode:    "1234567890",
			entities.FieldAddressTitle:  "خانه",
		}
		for k, v := range want {
			if f[k] != v {
				t.Fatalf("field %s: expected %q, got %q", k, v, f[k])
			}
		}
	})

	t.Run("checkup has no address fields", func(t *testing.T) {
		f := p.Prefill(entities.RequestTypeCheckup, profile)
		if _, ok := f[entities.FieldNeighborhood]; ok {
			t.Fatalf("unexpected neighborhood in checkup prefill")
		}
		if f[entities.FieldFullName] != "علی محمدی" {
			t.Fatalf("unexpected full name %q", f[entities.FieldFullName])
		}
	})

	t.Run("nil profile yields empty values", func(t *testing.T) {
		f := p.Prefill(entities.RequestTypeSampling, nil)
		for _, k := range []string{entities.FieldFullName, entities.FieldNeighborhood, entities.FieldStreet, entities.FieldPlaque, entities.FieldPostalCode} {
			if f[k] != "" {
				t.Fatalf("field %s: expected empty, got %q", k, f[k])
			}
		}
	})

	t.Run("partial name is not joined", func(t *testing.T) {
		f := p.Prefill(entities.RequestTypeCheckup, &entities.UserProfile{FirstName: "علی"})
		if f[entities.FieldFullName] != "" {
			t.Fatalf("expected empty full name, got %q", f[entities.FieldFullName])
		}
	})
}

func TestProfilePrefiller_Seed(t *testing.T) {
	p := NewProfilePrefiller()

	seed := p.Seed(entities.RequestTypeCheckup, &entities.UserProfile{Phone: "0912"})
	if seed[entities.FieldLocation] != LocationClinic {
		t.Fatalf("expected default location clinic, got %q", seed[entities.FieldLocation])
	}
	if seed[entities.FieldPhone] != "0912" {
		t.Fatalf("expected phone to be prefilled, got %q", seed[entities.FieldPhone])
	}
	if v, ok := seed[entities.FieldPreferredDate]; !ok || v != "" {
		t.Fatalf("expected empty preferred_date entry, got %q ok=%t", v, ok)
	}

	sampling := p.Seed(entities.RequestTypeSampling, nil)
	if sampling[entities.FieldHasPrescription] != "false" {
		t.Fatalf("expected has_prescription=false, got %q", sampling[entities.FieldHasPrescription])
	}
	if _, ok := sampling[entities.FieldLocation]; ok {
		t.Fatalf("sampling seed must not carry checkup-only fields")
	}
}
