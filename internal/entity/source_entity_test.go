package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSources(t *testing.T) {
	a := &Source{Id: 1, ProjectId: 1, Code: "api"}
	b := &Source{Id: 2, ProjectId: 1, Code: "web"}
	c := &Source{Id: 3, ProjectId: 2, Code: "api"}
	sameAsA := &Source{Id: 9, ProjectId: 1, Code: "api", Name: "Other name"}
	noCode := &Source{ProjectId: 1}

	assert.Negative(t, CompareSources(a, b))
	assert.Negative(t, CompareSources(b, c))
	assert.Negative(t, CompareSources(noCode, a))
	assert.Negative(t, CompareSources(nil, a))
	assert.Zero(t, CompareSources(a, sameAsA))
	assert.True(t, a.Equal(sameAsA))
	assert.False(t, a.Equal(c))

	for _, x := range []*Source{a, b, c, sameAsA, noCode} {
		for _, y := range []*Source{a, b, c, sameAsA, noCode} {
			assert.Equal(t, CompareSources(x, y) == 0, x.Equal(y))
		}
	}
}

func TestSource_BranchURL(t *testing.T) {
	s := &Source{VcsUrl: "https://git.company.com/p/edit/{{branch}}/src/", DefaultBranch: "develop"}

	assert.Equal(t, "https://git.company.com/p/edit/develop/src/", s.BranchURL(""))
	assert.Equal(t, "https://git.company.com/p/edit/master/src/", s.BranchURL("master"))
}

func TestCoverageLevel_LabelsAreDefined(t *testing.T) {
	for _, level := range CoverageLevels {
		assert.True(t, level.IsValid())
		assert.NotEmpty(t, level.Label(), level)
		assert.NotEmpty(t, level.Tooltip(), level)
	}
	assert.False(t, CoverageLevel("UNKNOWN").IsValid())
}

func TestSplitCountryCodes(t *testing.T) {
	assert.Equal(t, []string{"fr", "us"}, SplitCountryCodes("fr, us,,"))
	assert.Empty(t, SplitCountryCodes(""))
}
