package entities

// Fields is the free-form field bag a wizard collects. Keys are the Field*
// constants; booleans are stored as "true"/"false".
type Fields map[string]string

const (
	FieldFullName                   = "full_name"
	FieldPhone                      = "phone"
	FieldNationalCode               = "national_code"
	FieldBirthDate                  = "birth_date"
	FieldGender                     = "gender"
	FieldCity                       = "city"
	FieldHasInsurance               = "has_insurance"
	FieldInsuranceName              = "insurance_name"
	FieldHasSupplementaryInsurance  = "has_supplementary_insurance"
	FieldSupplementaryInsuranceName = "supplementary_insurance_name"

	FieldNeighborhood = "neighborhood"
	FieldStreet       = "street"
	FieldPlaque       = "plaque"
	FieldUnit         = "unit"
	FieldPostalCode   = "postal_code"
	FieldAddressTitle = "address_title"

	FieldHasPrescription  = "has_prescription"
	FieldPrescriptionCode = "prescription_code"
	FieldDoctorName       = "doctor_name"

	FieldPreferredDate    = "preferred_date"
	FieldPreferredTime    = "preferred_time"
	FieldLocation         = "location"
	FieldEmergencyContact = "emergency_contact"
	FieldNotes            = "notes"
)

// Clone returns an independent copy; a nil bag clones to an empty one.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}
