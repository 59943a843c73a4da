// FILE: internal/entity/coverage_level.go
package entity

// CoverageLevel classifies how well a functionality is covered by non-ignored scenarios.
type CoverageLevel string

const (
	CoverageLevelCovered          CoverageLevel = "COVERED"
	CoverageLevelPartiallyCovered CoverageLevel = "PARTIALLY_COVERED"
	CoverageLevelIgnoredCoverage  CoverageLevel = "IGNORED_COVERAGE"
	CoverageLevelStarted          CoverageLevel = "STARTED"
	CoverageLevelNotAutomatable   CoverageLevel = "NOT_AUTOMATABLE"
	CoverageLevelNotCovered       CoverageLevel = "NOT_COVERED"
)

// CoverageLevels lists every level in display order.
var CoverageLevels = []CoverageLevel{
	CoverageLevelCovered,
	CoverageLevelPartiallyCovered,
	CoverageLevelIgnoredCoverage,
	CoverageLevelStarted,
	CoverageLevelNotAutomatable,
	CoverageLevelNotCovered,
}

var coverageLevelLabels = map[CoverageLevel][2]string{
	CoverageLevelCovered: {
		"Covered (no ignored)",
		"Covered by at least one scenario, none of them ignored",
	},
	CoverageLevelPartiallyCovered: {
		"Partially covered (few ignored)",
		"Covered by several scenarios, some of them being ignored",
	},
	CoverageLevelIgnoredCoverage: {
		"Ignored coverage (all ignored)",
		"Covered only by ignored scenarios",
	},
	CoverageLevelStarted: {
		"Started",
		"Not covered yet, but automation has started",
	},
	CoverageLevelNotAutomatable: {
		"Not automatable",
		"Not covered, and declared as not automatable",
	},
	CoverageLevelNotCovered: {
		"Not covered",
		"Not covered by any scenario, and automation has not started",
	},
}

func (l CoverageLevel) Label() string {
	return coverageLevelLabels[l][0]
}

func (l CoverageLevel) Tooltip() string {
	return coverageLevelLabels[l][1]
}

func (l CoverageLevel) IsValid() bool {
	_, ok := coverageLevelLabels[l]
	return ok
}
