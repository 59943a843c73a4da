// FILE: internal/entity/functionality_entity.go
package entity

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"
)

// CountryCodesSeparator joins country codes, eg. "fr,us".
const CountryCodesSeparator = ","

type FunctionalityType string

const (
	FunctionalityTypeFolder        FunctionalityType = "FOLDER"
	FunctionalityTypeFunctionality FunctionalityType = "FUNCTIONALITY"
)

type FunctionalitySeverity string

const (
	FunctionalitySeverityHigh   FunctionalitySeverity = "HIGH"
	FunctionalitySeverityMedium FunctionalitySeverity = "MEDIUM"
	FunctionalitySeverityLow    FunctionalitySeverity = "LOW"
)

// Functionality is a node of the requirement tree: a folder or a functionality
// covered by zero or more scenarios.
//
// The scenario set and the started/notAutomatable flags are only reachable
// through the mutators below, which keep the memoized coverage level in sync.
// A Functionality must not be copied after first use.
type Functionality struct {
	Id           int64
	ProjectId    int64
	ParentId     *int64 // nil for root nodes
	Order        float64
	Type         FunctionalityType
	Name         string
	CountryCodes string
	TeamId       *int64
	Severity     FunctionalitySeverity
	Created      string
	Comment      string

	// Maintained by the coverage consumer, not by the mutators.
	CoveredScenarios        int
	CoveredCountryScenarios string
	IgnoredScenarios        int
	IgnoredCountryScenarios string

	CreationDateTime time.Time
	UpdateDateTime   *time.Time

	mu             sync.Mutex
	started        *bool
	notAutomatable *bool
	scenarios      []*Scenario // sorted by CompareScenarios, no duplicates
	coverage       coverageState
}

// coverageState is either stale or holds the cached level.
type coverageState struct {
	cached bool
	level  CoverageLevel
}

func (f *Functionality) IsFolder() bool {
	return f.Type == FunctionalityTypeFolder
}

func (f *Functionality) Countries() []string {
	return SplitCountryCodes(f.CountryCodes)
}

func (f *Functionality) Started() *bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

func (f *Functionality) SetStarted(started *bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = started
	f.coverage = coverageState{}
}

func (f *Functionality) NotAutomatable() *bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notAutomatable
}

func (f *Functionality) SetNotAutomatable(notAutomatable *bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notAutomatable = notAutomatable
	f.coverage = coverageState{}
}

// Scenarios returns a copy of the scenario set, in natural order.
func (f *Functionality) Scenarios() []*Scenario {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.scenarios)
}

func (f *Functionality) AddScenario(scenario *Scenario) {
	if scenario == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, found := slices.BinarySearchFunc(f.scenarios, scenario, CompareScenarios); !found {
		f.scenarios = slices.Insert(f.scenarios, i, scenario)
	}
	f.coverage = coverageState{}
}

func (f *Functionality) RemoveScenario(scenario *Scenario) {
	if scenario == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, found := slices.BinarySearchFunc(f.scenarios, scenario, CompareScenarios); found {
		f.scenarios = slices.Delete(f.scenarios, i, i+1)
	}
	f.coverage = coverageState{}
}

// CoverageLevel returns the memoized classification, recomputed after any mutation.
func (f *Functionality) CoverageLevel() CoverageLevel {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.coverage.cached {
		f.coverage = coverageState{cached: true, level: f.classify()}
	}
	return f.coverage.level
}

func (f *Functionality) classify() CoverageLevel {
	if len(f.scenarios) > 0 {
		ignored := 0
		for _, s := range f.scenarios {
			if s.Ignored {
				ignored++
			}
		}
		switch {
		case ignored == 0:
			return CoverageLevelCovered
		case ignored < len(f.scenarios):
			return CoverageLevelPartiallyCovered
		default:
			return CoverageLevelIgnoredCoverage
		}
	}
	if isTrue(f.started) {
		return CoverageLevelStarted
	}
	if isTrue(f.notAutomatable) {
		return CoverageLevelNotAutomatable
	}
	return CoverageLevelNotCovered
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// FunctionalityKey is the business key (projectId, parentId, name).
// Equality and ordering are both derived from it.
type FunctionalityKey struct {
	ProjectId int64
	HasParent bool
	ParentId  int64
	Name      string
}

func (f *Functionality) Key() FunctionalityKey {
	key := FunctionalityKey{ProjectId: f.ProjectId, Name: f.Name}
	if f.ParentId != nil {
		key.HasParent = true
		key.ParentId = *f.ParentId
	}
	return key
}

func (k FunctionalityKey) Compare(o FunctionalityKey) int {
	if c := cmp.Compare(k.ProjectId, o.ProjectId); c != 0 {
		return c
	}
	if k.HasParent != o.HasParent {
		if !k.HasParent {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(k.ParentId, o.ParentId); c != 0 {
		return c
	}
	return strings.Compare(k.Name, o.Name)
}

// CompareFunctionalities orders by business key, nil first.
func CompareFunctionalities(a, b *Functionality) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Key().Compare(b.Key())
}

func (f *Functionality) Equal(other *Functionality) bool {
	return CompareFunctionalities(f, other) == 0
}

// FunctionalityPosition places moved functionalities relative to a reference.
type FunctionalityPosition string

const (
	FunctionalityPositionAbove     FunctionalityPosition = "ABOVE"
	FunctionalityPositionBelow     FunctionalityPosition = "BELOW"
	FunctionalityPositionLastChild FunctionalityPosition = "LAST_CHILD"
)
