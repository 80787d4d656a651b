package usecase

import "github.com/naka-gawa/repo-insights/internal/domain"

// Filter returns the records whose language is in sel, preserving their order.
// The input slice is never modified.
func Filter(records []domain.Repository, sel domain.Selection) []domain.Repository {
	out := make([]domain.Repository, 0, len(records))
	for _, r := range records {
		if sel.Contains(r.Language) {
			out = append(out, r)
		}
	}
	return out
}

// Languages returns the distinct languages of records in first-appearance order.
func Languages(records []domain.Repository) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, r := range records {
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		langs = append(langs, r.Language)
	}
	return langs
}
