package usecase

import (
	"salamatlab/internal/domain/entities"
	"strconv"
	"strings"
)

const (
	addressDelimiter = "،"
	plaqueKeyword    = "پلاک"
	unitKeyword      = "واحد"
)

// AddressParts is the best-effort decomposition of a free-text address.
type AddressParts struct {
	Neighborhood string
	Street       string
	Plaque       string
	Unit         string
}

// ProfilePrefiller derives initial wizard fields from a stored profile.
// It never fails: missing or odd data degrades to empty strings.
type ProfilePrefiller struct{}

func NewProfilePrefiller() *ProfilePrefiller {
	return &ProfilePrefiller{}
}

// Seed returns the full field bag a fresh wizard of the given flow starts with:
// every accepted field present, flow defaults applied, profile values on top.
func (p *ProfilePrefiller) Seed(flow entities.RequestType, profile *entities.UserProfile) entities.Fields {
	fields := entities.Fields{}
	for name := range allowedFields(flow) {
		fields[name] = ""
	}
	for k, v := range flowDefaults(flow) {
		fields[k] = v
	}
	for k, v := range p.Prefill(flow, profile) {
		if _, ok := fields[k]; ok {
			fields[k] = v
		}
	}
	return fields
}

// Prefill maps the profile onto wizard fields. A nil profile yields a bag of
// empty values.
func (p *ProfilePrefiller) Prefill(flow entities.RequestType, profile *entities.UserProfile) entities.Fields {
	if profile == nil {
		profile = &entities.UserProfile{}
	}

	fields := entities.Fields{
		entities.FieldFullName:      fullName(profile),
		entities.FieldPhone:         strings.TrimSpace(profile.Phone),
		entities.FieldNationalCode:  strings.TrimSpace(profile.NationalID),
		entities.FieldCity:          strings.TrimSpace(profile.City),
		entities.FieldHasInsurance:  strconv.FormatBool(profile.HasBasicInsurance),
		entities.FieldInsuranceName: strings.TrimSpace(profile.BasicInsuranceName),
	}
	if flow != entities.RequestTypeSampling {
		return fields
	}

	fields[entities.FieldBirthDate] = strings.TrimSpace(profile.BirthDate)
	fields[entities.FieldGender] = strings.TrimSpace(profile.Gender)
	fields[entities.FieldHasSupplementaryInsurance] = strconv.FormatBool(profile.HasSupplementaryInsurance)
	fields[entities.FieldSupplementaryInsuranceName] = strings.TrimSpace(profile.SupplementaryInsuranceName)

	var parts AddressParts
	var addr entities.Address
	if a, ok := ResolveDefaultAddress(profile.Addresses); ok {
		addr = a
		parts = DecomposeAddress(a.Address)
	}
	fields[entities.FieldNeighborhood] = parts.Neighborhood
	fields[entities.FieldStreet] = parts.Street
	fields[entities.FieldPlaque] = parts.Plaque
	fields[entities.FieldUnit] = parts.Unit
	fields[entities.FieldPostalCode] = strings.TrimSpace(addr.PostalCode)
	fields[entities.FieldAddressTitle] = strings.TrimSpace(addr.Title)
	return fields
}

// ResolveDefaultAddress picks the address flagged as default, falling back to
// the first one. It reports false for an empty set.
func ResolveDefaultAddress(addresses []entities.Address) (entities.Address, bool) {
	if len(addresses) == 0 {
		return entities.Address{}, false
	}
	for _, a := range addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return addresses[0], true
}

// DecomposeAddress splits a legacy free-text address such as
// "تهران، شهرقدس، خیابان شهید بهشتی، پلاک ۱۲۳" on the Persian comma.
// Segment 1 is the neighborhood and segment 2 the street; any segment holding
// the plaque or unit keyword yields that value with the keyword stripped.
// Addresses that do not follow this shape produce empty parts.
func DecomposeAddress(text string) AddressParts {
	text = strings.TrimSpace(text)
	if text == "" {
		return AddressParts{}
	}

	raw := strings.Split(text, addressDelimiter)
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		segments = append(segments, strings.TrimSpace(s))
	}

	var parts AddressParts
	if len(segments) > 1 {
		parts.Neighborhood = segments[1]
	}
	if len(segments) > 2 {
		parts.Street = segments[2]
	}
	for _, s := range segments {
		if parts.Plaque == "" && strings.Contains(s, plaqueKeyword) {
			parts.Plaque = stripKeyword(s, plaqueKeyword)
		}
		if parts.Unit == "" && strings.Contains(s, unitKeyword) {
			parts.Unit = stripKeyword(s, unitKeyword)
		}
	}
	return parts
}

func stripKeyword(segment, keyword string) string {
	return strings.TrimSpace(strings.Replace(segment, keyword, "", 1))
}

func fullName(profile *entities.UserProfile) string {
	first := strings.TrimSpace(profile.FirstName)
	last := strings.TrimSpace(profile.LastName)
	if first == "" || last == "" {
		return ""
	}
	return first + " " + last
}

func flowDefaults(flow entities.RequestType) entities.Fields {
	switch flow {
	case entities.RequestTypeCheckup:
		return entities.Fields{
			entities.FieldLocation:     LocationClinic,
			entities.FieldHasInsurance: "false",
		}
	case entities.RequestTypeSampling:
		return entities.Fields{
			entities.FieldHasInsurance:              "false",
			entities.FieldHasSupplementaryInsurance: "false",
			entities.FieldHasPrescription:           "false",
		}
	default:
		return entities.Fields{}
	}
}
