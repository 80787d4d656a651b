package domain

// Selection is the set of programming languages the user chose to display.
// The zero value selects nothing; use AllLanguages for the default selection.
type Selection struct {
	all   bool
	langs map[string]struct{}
	order []string
}

// AllLanguages selects every language present in the data.
func AllLanguages() Selection {
	return Selection{all: true}
}

// SelectLanguages selects exactly the given languages. Duplicates are ignored
// and an empty call yields an empty selection.
func SelectLanguages(langs ...string) Selection {
	s := Selection{langs: make(map[string]struct{}, len(langs))}
	for _, l := range langs {
		if _, ok := s.langs[l]; ok {
			continue
		}
		s.langs[l] = struct{}{}
		s.order = append(s.order, l)
	}
	return s
}

// IsAll reports whether the selection is the "all languages" default.
func (s Selection) IsAll() bool {
	return s.all
}

// Contains reports whether lang is selected.
func (s Selection) Contains(lang string) bool {
	if s.all {
		return true
	}
	_, ok := s.langs[lang]
	return ok
}

// Languages returns the explicitly selected languages in the order given.
// It returns nil for the "all languages" selection.
func (s Selection) Languages() []string {
	if s.all {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
