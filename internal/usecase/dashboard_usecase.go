package usecase

import (
	"context"
	"errors"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"
)

var ErrInvalidRequestTypeFilter = errors.New("invalid request type filter")

const FilterTypeAll = "all"

// DashboardEntry is one row of the requests dashboard. Sample marks the fixed
// illustrative rows that are not part of the user's ledger.
type DashboardEntry struct {
	entities.RequestRecord
	Sample bool `json:"sample"`
}

// DashboardFilter narrows the combined list. Empty values match everything.
type DashboardFilter struct {
	Type   string
	Status string
	Query  string
}

// IDashboardUseCase reads a user's requests for display. It never writes.
type IDashboardUseCase interface {
	LoadForUser(ctx context.Context, userID string) ([]DashboardEntry, error)
	List(ctx context.Context, userID string, filter DashboardFilter) ([]DashboardEntry, error)
}

type DashboardUseCase struct {
	ledger         interfaces.IRequestLedger
	includeSamples bool
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(ledger interfaces.IRequestLedger, includeSamples bool) *DashboardUseCase {
	return &DashboardUseCase{ledger: ledger, includeSamples: includeSamples}
}

// LoadForUser returns the user's ledger newest first, followed by the
// illustrative entries.
func (u *DashboardUseCase) LoadForUser(ctx context.Context, userID string) ([]DashboardEntry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	records, err := u.ledger.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	out := make([]DashboardEntry, 0, len(records)+len(sampleRequests))
	for _, r := range records {
		out = append(out, DashboardEntry{RequestRecord: r})
	}
	if u.includeSamples {
		for _, r := range sampleRequests {
			r.Fields = r.Fields.Clone()
			out = append(out, DashboardEntry{RequestRecord: r, Sample: true})
		}
	}
	return out, nil
}

func (u *DashboardUseCase) List(ctx context.Context, userID string, filter DashboardFilter) ([]DashboardEntry, error) {
	typ := strings.ToLower(strings.TrimSpace(filter.Type))
	if typ != "" && typ != FilterTypeAll && !entities.RequestType(typ).Valid() {
		return nil, ErrInvalidRequestTypeFilter
	}

	entries, err := u.LoadForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(filter.Status))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]DashboardEntry, 0, len(entries))
	for _, e := range entries {
		if typ != "" && typ != FilterTypeAll && string(e.Type) != typ {
			continue
		}
		if status != "" && string(e.Status) != status {
			continue
		}
		if query != "" && !matchesQuery(e.RequestRecord, query) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func matchesQuery(r entities.RequestRecord, query string) bool {
	for _, s := range []string{r.ID, r.Package.Title, string(r.Status)} {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

var sampleRequests = []entities.RequestRecord{
	{
		ID:   "sample-checkup-1",
		Type: entities.RequestTypeCheckup,
		Package: entities.PackageSnapshot{
			ID:          "specialized_heart",
			Category:    entities.CategorySpecialized,
			Title:       "چکاپ قلب و عروق",
			Description: "ارزیابی ریسک بیماری‌های قلبی",
			Price:       "۱,۴۰۰,۰۰۰",
		},
		Fields: entities.Fields{
			entities.FieldPreferredDate: "2024-09-15",
			entities.FieldPreferredTime: "09:30",
			entities.FieldLocation:      LocationClinic,
		},
		Status:    entities.RequestStatusCompleted,
		CreatedAt: time.Date(2024, time.September, 10, 8, 0, 0, 0, time.UTC),
	},
	{
		ID:   "sample-sampling-1",
		Type: entities.RequestTypeSampling,
		Package: entities.PackageSnapshot{
			ID:          "1",
			Title:       "نمونه‌گیری در منزل - نسخه پزشک",
			Description: "نمونه‌گیری بر اساس نسخه الکترونیک یا کاغذی",
			Price:       "۳۵۰,۰۰۰",
		},
		Fields: entities.Fields{
			entities.FieldCity:         "تهران",
			entities.FieldNeighborhood: "شهرقدس",
		},
		Status:    entities.RequestStatusConfirmed,
		CreatedAt: time.Date(2024, time.August, 28, 10, 30, 0, 0, time.UTC),
	},
}
