package interfaces

import "salamatlab/internal/domain/entities"

// IPackageCatalog exposes the compiled-in package taxonomy. All methods are
// pure and never fail; unknown keys yield empty results.
type IPackageCatalog interface {
	Categories() []entities.PackageCategory
	Packages(key entities.PackageCategoryKey) []entities.Package
	FindPackage(id string) (entities.Package, bool)
	SamplingPackages() []entities.Package
	SamplingPackage(index int) (entities.Package, bool)
	TimeSlots() []string
}
