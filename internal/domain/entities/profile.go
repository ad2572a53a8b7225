package entities

type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Address is one entry of a profile's address book. Address is free text;
// at most one address of a profile is expected to carry IsDefault.
type Address struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Type       AddressType `json:"type"`
	Address    string      `json:"address"`
	PostalCode string      `json:"postal_code"`
	Phone      string      `json:"phone"`
	IsDefault  bool        `json:"is_default"`
}

// UserProfile is owned by the identity service; the intake core only reads it.
type UserProfile struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Gender     string `json:"gender"`
	City       string `json:"city"`

	HasBasicInsurance          bool   `json:"has_basic_insurance"`
	BasicInsuranceName         string `json:"basic_insurance_name"`
	HasSupplementaryInsurance  bool   `json:"has_supplementary_insurance"`
	SupplementaryInsuranceName string `json:"supplementary_insurance_name"`

	Addresses []Address `json:"addresses"`
}
