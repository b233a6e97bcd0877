package catalog

import (
	"sort"

	"ecommerce-store/internal/data/entity"
)

// Facet derivation over the full dataset: unique non-empty values in
// first-seen order. Ratings are additionally sorted descending for display.

func Brands(products []entity.Product) []string {
	return distinct(products, func(p entity.Product) string { return p.Brand })
}

func Categories(products []entity.Product) []string {
	return distinct(products, func(p entity.Product) string { return p.Category })
}

func Colors(products []entity.Product) []string {
	seen := make(map[string]bool)
	colors := []string{}
	for _, p := range products {
		for _, c := range p.Colors {
			if c != "" && !seen[c] {
				seen[c] = true
				colors = append(colors, c)
			}
		}
	}
	return colors
}

func Ratings(products []entity.Product) []float64 {
	seen := make(map[float64]bool)
	ratings := []float64{}
	for _, p := range products {
		if !seen[p.Rating] {
			seen[p.Rating] = true
			ratings = append(ratings, p.Rating)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ratings)))
	return ratings
}

func distinct(products []entity.Product, field func(entity.Product) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, p := range products {
		v := field(p)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
