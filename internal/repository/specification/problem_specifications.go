package specification

import (
	"strings"

	"ara-be/internal/entity"

	"gorm.io/gorm"
)

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ProblemMatching applies every non-empty criterion of the filter.
type ProblemMatching struct {
	Filter entity.ProblemFilter
}

func (s ProblemMatching) Apply(db *gorm.DB) *gorm.DB {
	f := s.Filter
	if f.Name != "" {
		db = db.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(f.Name)+"%")
	}
	if f.DefectId != "" {
		db = db.Where("defect_id = ?", f.DefectId)
	}
	if f.Status != "" {
		db = db.Where("status = ?", string(f.Status))
	}
	if f.BlamedTeamId != nil {
		db = db.Where("blamed_team_id = ?", *f.BlamedTeamId)
	}
	return db
}
