// FILE: internal/entity/source_entity.go
package entity

import (
	"cmp"
	"strings"
)

// BranchPlaceholder is replaced by the VCS branch in Source.VcsUrl.
const BranchPlaceholder = "{{branch}}"

type Technology string

const (
	TechnologyCucumber Technology = "CUCUMBER"
	TechnologyPostman  Technology = "POSTMAN"
)

func (t Technology) IsValid() bool {
	return t == TechnologyCucumber || t == TechnologyPostman
}

// Source is a version-control location of test artifacts for a project.
type Source struct {
	Id            int64
	ProjectId     int64
	Code          string // short code sent by the build system
	Name          string
	Letter        string // single display character
	Technology    Technology
	VcsUrl        string // eg. "https://git.company.com/project/edit/{{branch}}/src/"
	DefaultBranch string
	// Only meaningful for POSTMAN: root folders are country codes ("all", "fr+us").
	PostmanCountryRootFolders bool
}

// BranchURL resolves VcsUrl for the given branch, or DefaultBranch when empty.
func (s *Source) BranchURL(branch string) string {
	if branch == "" {
		branch = s.DefaultBranch
	}
	return strings.ReplaceAll(s.VcsUrl, BranchPlaceholder, branch)
}

// SourceKey is the business key (projectId, code).
type SourceKey struct {
	ProjectId int64
	Code      string
}

func (s *Source) Key() SourceKey {
	return SourceKey{ProjectId: s.ProjectId, Code: s.Code}
}

func (k SourceKey) Compare(o SourceKey) int {
	if c := cmp.Compare(k.ProjectId, o.ProjectId); c != 0 {
		return c
	}
	return strings.Compare(k.Code, o.Code)
}

func CompareSources(a, b *Source) int {
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

func (s *Source) Equal(other *Source) bool {
	return CompareSources(s, other) == 0
}
