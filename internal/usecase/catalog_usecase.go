package usecase

import (
	"errors"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"strings"
)

var ErrUnknownCategoryKey = errors.New("unknown package category")

const (
	thousandsSeparator = "٬"
	currencySuffix     = " تومان"
)

// FormatPrice turns a catalog price such as "۸۵۰,۰۰۰" into "۸۵۰٬۰۰۰ تومان".
func FormatPrice(price string) string {
	return strings.ReplaceAll(price, ",", thousandsSeparator) + currencySuffix
}

// ICatalogUseCase is the read-only catalog surface used by the HTTP layer.
type ICatalogUseCase interface {
	Categories() []entities.PackageCategory
	Packages(key entities.PackageCategoryKey) ([]entities.Package, error)
	SamplingPackages() []entities.Package
	TimeSlots() []string
}

type CatalogUseCase struct {
	catalog interfaces.IPackageCatalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.IPackageCatalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

func (u *CatalogUseCase) Categories() []entities.PackageCategory {
	return u.catalog.Categories()
}

func (u *CatalogUseCase) Packages(key entities.PackageCategoryKey) ([]entities.Package, error) {
	if !key.Valid() {
		return nil, ErrUnknownCategoryKey
	}
	return u.catalog.Packages(key), nil
}

func (u *CatalogUseCase) SamplingPackages() []entities.Package {
	return u.catalog.SamplingPackages()
}

func (u *CatalogUseCase) TimeSlots() []string {
	return u.catalog.TimeSlots()
}
