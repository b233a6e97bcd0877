package catalog

// Paginate returns the half-open slice [(page-1)*size, page*size) of list.
// Out-of-range pages yield an empty slice, never an error.
func Paginate[T any](list []T, pageSize, pageNumber int) []T {
	if pageSize <= 0 || pageNumber <= 0 {
		return []T{}
	}

	start := (pageNumber - 1) * pageSize
	if start >= len(list) {
		return []T{}
	}

	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}

	return list[start:end]
}

// PageCount is ceil(len/size); 0 for an empty list means no pagination
// controls render.
func PageCount[T any](list []T, pageSize int) int {
	if pageSize <= 0 || len(list) == 0 {
		return 0
	}
	return (len(list) + pageSize - 1) / pageSize
}
