package response

import (
	"time"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
)

type PackageSnapshotResponse struct {
	ID           string `json:"id"`
	Category     string `json:"category,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	DisplayPrice string `json:"display_price"`
}

type RequestRecordResponse struct {
	ID        string                  `json:"id"`
	Type      string                  `json:"type"`
	Package   PackageSnapshotResponse `json:"package"`
	Fields    map[string]string       `json:"fields"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UserID    string                  `json:"user_id,omitempty"`
	Sample    bool                    `json:"sample"`
}

type DashboardResponse struct {
	Items []RequestRecordResponse `json:"items"`
	Count int                     `json:"count"`
}

func FromRequestRecord(r entities.RequestRecord, sample bool) RequestRecordResponse {
	fields := map[string]string(r.Fields.Clone())
	if fields == nil {
		fields = map[string]string{}
	}
	return RequestRecordResponse{
		ID:   r.ID,
		Type: string(r.Type),
		Package: PackageSnapshotResponse{
			ID:           r.Package.ID,
			Category:     string(r.Package.Category),
			Title:        r.Package.Title,
			Description:  r.Package.Description,
			Price:        r.Package.Price,
			DisplayPrice: usecase.FormatPrice(r.Package.Price),
		},
		Fields:    fields,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UserID:    r.UserID,
		Sample:    sample,
	}
}

func FromDashboard(entries []usecase.DashboardEntry) DashboardResponse {
	items := make([]RequestRecordResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, FromRequestRecord(e.RequestRecord, e.Sample))
	}
	return DashboardResponse{Items: items, Count: len(items)}
}
