package response

import (
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
)

type PackageResponse struct {
	ID           string   `json:"id"`
	Category     string   `json:"category,omitempty"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Price        string   `json:"price"`
	DisplayPrice string   `json:"display_price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular"`
}

type CategoryResponse struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Packages []PackageResponse `json:"packages"`
}

type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

func FromPackage(p entities.Package) PackageResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PackageResponse{
		ID:           p.ID,
		Category:     string(p.Category),
		Title:        p.Title,
		Subtitle:     p.Subtitle,
		Price:        p.Price,
		DisplayPrice: usecase.FormatPrice(p.Price),
		Description:  p.Description,
		Features:     features,
		Popular:      p.Popular,
	}
}

func FromPackages(pkgs []entities.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromPackage(p))
	}
	return out
}

func FromCategories(cats []entities.PackageCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{
			Key:      string(c.Key),
			Title:    c.Title,
			Packages: FromPackages(c.Packages),
		})
	}
	return out
}
