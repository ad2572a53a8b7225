package request

import (
	"strings"

	"salamatlab/internal/domain/entities"
)

type AddressRequest struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type" binding:"omitempty,oneof=home work other"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

// ProfileRequest is the stored user profile the client hands over when a
// session starts. It only seeds the wizards and is not persisted.
type ProfileRequest struct {
	ID                         string           `json:"id"`
	FirstName                  string           `json:"first_name"`
	LastName                   string           `json:"last_name"`
	Phone                      string           `json:"phone"`
	NationalID                 string           `json:"national_id"`
	BirthDate                  string           `json:"birth_date"`
	Gender                     string           `json:"gender"`
	City                       string           `json:"city"`
	HasBasicInsurance          bool             `json:"has_basic_insurance"`
	BasicInsuranceName         string           `json:"basic_insurance_name"`
	HasSupplementaryInsurance  bool             `json:"has_supplementary_insurance"`
	SupplementaryInsuranceName string           `json:"supplementary_insurance_name"`
	Addresses                  []AddressRequest `json:"addresses" binding:"omitempty,dive"`
}

func (p ProfileRequest) ToEntity() *entities.UserProfile {
	out := &entities.UserProfile{
		ID:                         p.ID,
		FirstName:                  p.FirstName,
		LastName:                   p.LastName,
		Phone:                      p.Phone,
		NationalID:                 p.NationalID,
		BirthDate:                  p.BirthDate,
		Gender:                     p.Gender,
		City:                       p.City,
		HasBasicInsurance:          p.HasBasicInsurance,
		BasicInsuranceName:         p.BasicInsuranceName,
		HasSupplementaryInsurance:  p.HasSupplementaryInsurance,
		SupplementaryInsuranceName: p.SupplementaryInsuranceName,
	}
	for _, a := range p.Addresses {
		out.Addresses = append(out.Addresses, entities.Address{
			ID:         a.ID,
			Title:      a.Title,
			Type:       entities.AddressType(a.Type),
			Address:    a.Address,
			PostalCode: a.PostalCode,
			Phone:      a.Phone,
			IsDefault:  a.IsDefault,
		})
	}
	return out
}

type StartSessionRequest struct {
	Profile *ProfileRequest `json:"profile"`
}

// ResolveProfile returns nil when no profile was sent.
func (r StartSessionRequest) ResolveProfile() *entities.UserProfile {
	if r.Profile == nil {
		return nil
	}
	return r.Profile.ToEntity()
}

type SelectFlowRequest struct {
	Flow string `json:"flow" binding:"required,oneof=checkup sampling"`
}

type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required,oneof=general specialized women cancer"`
}

// SelectPackageRequest carries the package id for checkups and the
// positional index (as a string) for home sampling.
type SelectPackageRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

func (r SelectPackageRequest) ResolvePackageID() string {
	return strings.TrimSpace(r.PackageID)
}

type UpdateFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}
