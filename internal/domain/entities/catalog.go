package entities

// PackageCategoryKey identifies a checkup category in the catalog.
type PackageCategoryKey string

const (
	CategoryGeneral     PackageCategoryKey = "general"
	CategorySpecialized PackageCategoryKey = "specialized"
	CategoryWomen       PackageCategoryKey = "women"
	CategoryCancer      PackageCategoryKey = "cancer"
)

// PackageCategoryKeys lists the checkup categories in display order.
var PackageCategoryKeys = []PackageCategoryKey{
	CategoryGeneral,
	CategorySpecialized,
	CategoryWomen,
	CategoryCancer,
}

func (k PackageCategoryKey) Valid() bool {
	for _, key := range PackageCategoryKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Package is a purchasable test panel.
//
// Checkup packages are addressed by ID. Sampling packages are addressed by
// their position in the sampling list; their ID is the decimal index.
// Price is kept as the formatted digit string shown to the visitor.
type Package struct {
	ID          string             `json:"id"`
	Category    PackageCategoryKey `json:"category,omitempty"`
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle,omitempty"`
	Price       string             `json:"price"`
	Description string             `json:"description"`
	Features    []string           `json:"features"`
	Popular     bool               `json:"popular"`
}

// PackageCategory groups an ordered list of checkup packages.
type PackageCategory struct {
	Key      PackageCategoryKey `json:"key"`
	Title    string             `json:"title"`
	Packages []Package          `json:"packages"`
}
