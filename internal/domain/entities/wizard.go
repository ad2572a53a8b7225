package entities

// WizardStep is a state of the intake stepper.
type WizardStep int

const (
	StepPackageSelection WizardStep = iota + 1
	StepDetailEntry
	StepConfirmation
	StepSuccess
)

func (s WizardStep) String() string {
	switch s {
	case StepPackageSelection:
		return "package_selection"
	case StepDetailEntry:
		return "detail_entry"
	case StepConfirmation:
		return "confirmation"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// WizardEvent drives a transition between steps.
type WizardEvent string

const (
	EventSelectPackage WizardEvent = "select_package"
	EventNext          WizardEvent = "next"
	EventBack          WizardEvent = "back"
	EventSubmitted     WizardEvent = "submitted"
	EventReset         WizardEvent = "reset"
)

// WizardState is the in-memory state of one intake session for one flow.
// It is never persisted.
type WizardState struct {
	Flow            RequestType        `json:"flow"`
	Step            WizardStep         `json:"step"`
	Category        PackageCategoryKey `json:"category,omitempty"`
	Package         *Package           `json:"package,omitempty"`
	Fields          Fields             `json:"fields"`
	Submitting      bool               `json:"submitting"`
	LastSubmittedID string             `json:"last_submitted_id,omitempty"`
}
