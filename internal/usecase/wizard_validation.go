package usecase

import (
	"fmt"
	"salamatlab/internal/domain/entities"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	LocationClinic = "clinic"
	LocationHome   = "home"
)

const (
	ReasonRequired        = "required"
	ReasonUnknownField    = "unknown field"
	ReasonInvalidTimeSlot = "unsupported time slot"
	ReasonInvalidLocation = "unsupported location"
	ReasonInvalidBool     = "must be true or false"
	ReasonInvalidDate     = "must be a YYYY-MM-DD date"
)

var fieldValidator = validator.New()

// ValidationError is a per-field, recoverable input problem.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors blocks a forward transition until the input is corrected.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// SubmissionError reports that the backend call or the ledger write failed.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

var (
	checkupRequiredFields = []string{
		entities.FieldPreferredDate,
		entities.FieldPreferredTime,
		entities.FieldEmergencyContact,
	}
	samplingRequiredFields = []string{
		entities.FieldFullName,
		entities.FieldPhone,
		entities.FieldNationalCode,
		entities.FieldCity,
		entities.FieldNeighborhood,
		entities.FieldStreet,
		entities.FieldPlaque,
	}

	checkupFields = fieldSet(
		entities.FieldPreferredDate,
		entities.FieldPreferredTime,
		entities.FieldLocation,
		entities.FieldEmergencyContact,
		entities.FieldNotes,
		entities.FieldFullName,
		entities.FieldPhone,
		entities.FieldNationalCode,
		entities.FieldCity,
		entities.FieldHasInsurance,
		entities.FieldInsuranceName,
	)
	samplingFields = fieldSet(
		entities.FieldFullName,
		entities.FieldPhone,
		entities.FieldNationalCode,
		entities.FieldBirthDate,
		entities.FieldGender,
		entities.FieldCity,
		entities.FieldHasInsurance,
		entities.FieldInsuranceName,
		entities.FieldHasSupplementaryInsurance,
		entities.FieldSupplementaryInsuranceName,
		entities.FieldNeighborhood,
		entities.FieldStreet,
		entities.FieldPlaque,
		entities.FieldUnit,
		entities.FieldPostalCode,
		entities.FieldAddressTitle,
		entities.FieldHasPrescription,
		entities.FieldPrescriptionCode,
		entities.FieldDoctorName,
		entities.FieldPreferredDate,
		entities.FieldPreferredTime,
		entities.FieldNotes,
	)
	boolFields = fieldSet(
		entities.FieldHasInsurance,
		entities.FieldHasSupplementaryInsurance,
		entities.FieldHasPrescription,
	)
)

// RequiredFields lists the fields the detail step of a flow cannot leave empty.
func RequiredFields(flow entities.RequestType) []string {
	switch flow {
	case entities.RequestTypeCheckup:
		return append([]string(nil), checkupRequiredFields...)
	case entities.RequestTypeSampling:
		return append([]string(nil), samplingRequiredFields...)
	default:
		return nil
	}
}

// ValidateDetails is the DetailEntry -> Confirmation guard. It returns nil iff
// every required field of the flow is non-blank.
func ValidateDetails(flow entities.RequestType, fields entities.Fields) error {
	var errs ValidationErrors
	for _, name := range RequiredFields(flow) {
		if err := fieldValidator.Var(strings.TrimSpace(fields.Get(name)), "required"); err != nil {
			errs = append(errs, ValidationError{Field: name, Reason: ReasonRequired})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// normalizeFields trims and checks a batch of field updates for a flow.
// Either every update is accepted or none is.
func normalizeFields(flow entities.RequestType, timeSlots []string, updates map[string]string) (entities.Fields, error) {
	allowed := allowedFields(flow)
	out := entities.Fields{}
	var errs ValidationErrors

	for name, raw := range updates {
		if _, ok := allowed[name]; !ok {
			errs = append(errs, ValidationError{Field: name, Reason: ReasonUnknownField})
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			out[name] = ""
			continue
		}

		switch {
		case name == entities.FieldPreferredTime:
			if !contains(timeSlots, value) {
				errs = append(errs, ValidationError{Field: name, Reason: ReasonInvalidTimeSlot})
				continue
			}
		case name == entities.FieldPreferredDate:
			if err := fieldValidator.Var(value, "datetime=2006-01-02"); err != nil {
				errs = append(errs, ValidationError{Field: name, Reason: ReasonInvalidDate})
				continue
			}
		case name == entities.FieldLocation:
			if value != LocationClinic && value != LocationHome {
				errs = append(errs, ValidationError{Field: name, Reason: ReasonInvalidLocation})
				continue
			}
		case isBoolField(name):
			b, err := strconv.ParseBool(value)
			if err != nil {
				errs = append(errs, ValidationError{Field: name, Reason: ReasonInvalidBool})
				continue
			}
			value = strconv.FormatBool(b)
		}
		out[name] = value
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return nil, errs
	}
	return out, nil
}

func allowedFields(flow entities.RequestType) map[string]struct{} {
	switch flow {
	case entities.RequestTypeCheckup:
		return checkupFields
	case entities.RequestTypeSampling:
		return samplingFields
	default:
		return map[string]struct{}{}
	}
}

func isBoolField(name string) bool {
	_, ok := boolFields[name]
	return ok
}

func fieldSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
