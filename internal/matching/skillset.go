package matching

import (
	"sort"
	"strings"
)

// SkillSet is a set of lower-cased skill terms. Duplicate mentions of a
// skill collapse into a single entry.
type SkillSet map[string]struct{}

func NewSkillSet(terms ...string) SkillSet {
	set := make(SkillSet, len(terms))
	for _, term := range terms {
		set.Add(term)
	}
	return set
}

func (s SkillSet) Add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

func (s SkillSet) Contains(term string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Sorted returns the terms in alphabetical order.
func (s SkillSet) Sorted() []string {
	terms := make([]string, 0, len(s))
	for term := range s {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Intersect returns the skills present in both sets.
func Intersect(a, b SkillSet) SkillSet {
	out := make(SkillSet)
	for term := range a {
		if _, ok := b[term]; ok {
			out[term] = struct{}{}
		}
	}
	return out
}
