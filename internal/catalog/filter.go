// Package catalog implements the product filter/sort/paginate pipeline.
// Everything here is a pure transform over in-memory slices: no I/O, no
// errors, safe to call from concurrent requests.
package catalog

import (
	"slices"
	"sort"

	"ecommerce-store/internal/data/entity"
)

type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// StatusAll is the sentinel tag meaning "no status filtering".
const StatusAll = "All"

// RatingBucket keeps products with Min <= rating <= Max. Both bounds are
// inclusive; see the pinning test for the 4.0/5.0 boundary behavior.
type RatingBucket struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSpec is the client-selected combination that derives the visible
// product subset. Empty sets mean "no filtering" for that stage; the price
// range always applies.
type FilterSpec struct {
	Statuses      []string
	PriceMin      float64
	PriceMax      float64
	Brands        []string
	RatingBuckets []RatingBucket
	Categories    []string
	Colors        []string
	Sort          SortOrder
}

// DefaultSpec matches every product with a price in [0, max].
func DefaultSpec(priceMax float64) FilterSpec {
	return FilterSpec{
		Statuses: []string{StatusAll},
		PriceMax: priceMax,
		Sort:     SortDefault,
	}
}

// Filter narrows products stage by stage: price range, status tag, brand,
// rating bucket, category, color, then sort. Each stage keeps the relative
// order of its input, so "default" sort preserves dataset order. A malformed
// price range (min > max) simply matches nothing.
func Filter(products []entity.Product, spec FilterSpec) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))

	for _, p := range products {
		if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
			continue
		}
		if !matchesStatus(p, spec.Statuses) {
			continue
		}
		if len(spec.Brands) > 0 && !slices.Contains(spec.Brands, p.Brand) {
			continue
		}
		if !matchesRating(p.Rating, spec.RatingBuckets) {
			continue
		}
		if len(spec.Categories) > 0 && !slices.Contains(spec.Categories, p.Category) {
			continue
		}
		if !matchesColor(p, spec.Colors) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch spec.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered
}

// matchesStatus treats an empty set or the "All" sentinel as a pass-through.
// A product with an empty tag is excluded by any concrete status filter.
func matchesStatus(p entity.Product, statuses []string) bool {
	if len(statuses) == 0 || slices.Contains(statuses, StatusAll) {
		return true
	}
	return slices.Contains(statuses, p.Tag)
}

// matchesRating keeps a product if any selected bucket contains its rating,
// bounds inclusive on both ends.
func matchesRating(rating float64, buckets []RatingBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if rating >= b.Min && rating <= b.Max {
			return true
		}
	}
	return false
}

// matchesColor keeps a product if any of its colors is selected.
func matchesColor(p entity.Product, colors []string) bool {
	if len(colors) == 0 {
		return true
	}
	for _, c := range p.Colors {
		if slices.Contains(colors, c) {
			return true
		}
	}
	return false
}
