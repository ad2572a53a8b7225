package catalog

import (
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"strconv"
)

// StaticCatalog serves the compiled-in package taxonomy. Every accessor
// returns copies, so callers can never mutate the catalog.
type StaticCatalog struct {
	categories []entities.PackageCategory
	sampling   []entities.Package
	timeSlots  []string
}

var _ interfaces.IPackageCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	c := &StaticCatalog{
		categories: checkupCategories(),
		sampling:   samplingPackages(),
		timeSlots:  halfHourSlots(8, 18),
	}
	for i := range c.categories {
		for j := range c.categories[i].Packages {
			c.categories[i].Packages[j].Category = c.categories[i].Key
		}
	}
	for i := range c.sampling {
		c.sampling[i].ID = strconv.Itoa(i)
	}
	return c
}

func (c *StaticCatalog) Categories() []entities.PackageCategory {
	out := make([]entities.PackageCategory, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, entities.PackageCategory{
			Key:      cat.Key,
			Title:    cat.Title,
			Packages: copyPackages(cat.Packages),
		})
	}
	return out
}

func (c *StaticCatalog) Packages(key entities.PackageCategoryKey) []entities.Package {
	for _, cat := range c.categories {
		if cat.Key == key {
			return copyPackages(cat.Packages)
		}
	}
	return []entities.Package{}
}

func (c *StaticCatalog) FindPackage(id string) (entities.Package, bool) {
	for _, cat := range c.categories {
		for _, p := range cat.Packages {
			if p.ID == id {
				return copyPackage(p), true
			}
		}
	}
	return entities.Package{}, false
}

func (c *StaticCatalog) SamplingPackages() []entities.Package {
	return copyPackages(c.sampling)
}

func (c *StaticCatalog) SamplingPackage(index int) (entities.Package, bool) {
	if index < 0 || index >= len(c.sampling) {
		return entities.Package{}, false
	}
	return copyPackage(c.sampling[index]), true
}

func (c *StaticCatalog) TimeSlots() []string {
	out := make([]string, len(c.timeSlots))
	copy(out, c.timeSlots)
	return out
}

// halfHourSlots lists "HH:MM" slots starting at fromHour, stopping before toHour.
func halfHourSlots(fromHour, toHour int) []string {
	slots := make([]string, 0, (toHour-fromHour)*2)
	for h := fromHour; h < toHour; h++ {
		hh := strconv.Itoa(h)
		if h < 10 {
			hh = "0" + hh
		}
		slots = append(slots, hh+":00", hh+":30")
	}
	return slots
}

func copyPackages(in []entities.Package) []entities.Package {
	out := make([]entities.Package, 0, len(in))
	for _, p := range in {
		out = append(out, copyPackage(p))
	}
	return out
}

func copyPackage(p entities.Package) entities.Package {
	features := make([]string, len(p.Features))
	copy(features, p.Features)
	p.Features = features
	return p
}
