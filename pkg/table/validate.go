package table

import (
	"slices"
)

// ValidateHeader checks that every required column is present in the
// header. On failure it returns a single error naming all missing
// columns, not just the first one, so the user can fix the sheet in
// one pass. Column matching is exact (case-sensitive).
func ValidateHeader(header, required []string) error {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	var missing []string
	for _, r := range required {
		if _, ok := present[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return MissingColumnsError(missing)
}
