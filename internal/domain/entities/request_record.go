package entities

import "time"

// RequestType discriminates the two intake flows.
type RequestType string

const (
	RequestTypeCheckup  RequestType = "checkup"
	RequestTypeSampling RequestType = "sampling"
)

func (t RequestType) Valid() bool {
	return t == RequestTypeCheckup || t == RequestTypeSampling
}

// RequestStatus is owned by the admin side once a record exists; the intake
// core only ever writes RequestStatusPending.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// PackageSnapshot is the copy of a package taken at submission time.
// Later catalog changes never reach records already written.
type PackageSnapshot struct {
	ID          string             `json:"id"`
	Category    PackageCategoryKey `json:"category,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       string             `json:"price"`
}

// RequestRecord is one submitted intake request. Immutable after creation.
//
// Storage model (key-value):
//   - key: requests_{user_id}
//   - value: JSON array of RequestRecord, append order
type RequestRecord struct {
	ID        string          `json:"id"`
	Type      RequestType     `json:"type"`
	Package   PackageSnapshot `json:"package"`
	Fields    Fields          `json:"fields"`
	Status    RequestStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    string          `json:"user_id"`
}
