package request

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"ecommerce-store/internal/catalog"
	"ecommerce-store/pkg/utils"
)

// DefaultPerPage matches the storefront grid size.
const DefaultPerPage = 9

type PageRequest struct {
	Page    int
	PerPage int
}

// ParseFilterQuery maps GET /api/products query parameters onto the engine's
// filter specification. Absent parameters leave their stage inactive, so a
// bare request returns the whole catalog in dataset order.
//
//	?min_price=40&max_price=1500&tags=Featured,On+Sale&brands=a,b
//	&categories=c&ratings=4-5,3-4&colors=Red&sort=price_asc&page=2&per_page=9
func ParseFilterQuery(q url.Values) (catalog.FilterSpec, PageRequest) {
	spec := catalog.FilterSpec{
		Statuses:   splitList(q.Get("tags")),
		PriceMax:   math.MaxFloat64,
		Brands:     splitList(q.Get("brands")),
		Categories: splitList(q.Get("categories")),
		Colors:     splitList(q.Get("colors")),
		Sort:       catalog.SortDefault,
	}

	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMin = f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMax = f
		}
	}

	for _, raw := range splitList(q.Get("ratings")) {
		lo, hi, ok := strings.Cut(raw, "-")
		if !ok {
			continue
		}
		min, errMin := strconv.ParseFloat(lo, 64)
		max, errMax := strconv.ParseFloat(hi, 64)
		if errMin != nil || errMax != nil {
			continue
		}
		spec.RatingBuckets = append(spec.RatingBuckets, catalog.RatingBucket{Min: min, Max: max})
	}

	switch q.Get("sort") {
	case string(catalog.SortPriceAsc):
		spec.Sort = catalog.SortPriceAsc
	case string(catalog.SortPriceDesc):
		spec.Sort = catalog.SortPriceDesc
	}

	page := PageRequest{
		Page:    utils.ParseInt(q.Get("page"), 1),
		PerPage: utils.ParseInt(q.Get("per_page"), DefaultPerPage),
	}
	if page.PerPage > 100 {
		page.PerPage = 100
	}

	return spec, page
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
