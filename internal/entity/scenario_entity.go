// FILE: internal/entity/scenario_entity.go
package entity

import (
	"cmp"
	"strings"
)

// Scenario is an automated test case indexed from a source.
type Scenario struct {
	Id           int64
	ProjectId    int64
	SourceId     int64
	FeatureFile  string
	Name         string
	Line         int
	CountryCodes string // comma separated, see CountryCodesSeparator
	Ignored      bool
}

// CompareScenarios is the natural ordering used as scenario-set identity.
func CompareScenarios(a, b *Scenario) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.ProjectId, b.ProjectId); c != 0 {
		return c
	}
	if c := cmp.Compare(a.SourceId, b.SourceId); c != 0 {
		return c
	}
	if c := strings.Compare(a.FeatureFile, b.FeatureFile); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Line, b.Line)
}

// Countries splits CountryCodes, dropping blanks.
func (s *Scenario) Countries() []string {
	return SplitCountryCodes(s.CountryCodes)
}

func SplitCountryCodes(codes string) []string {
	parts := strings.Split(codes, CountryCodesSeparator)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
