package queries

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/danuarts/stylora-backend/app/models"
)

// filterStage is one composable predicate of the discovery query. Stages are
// plain WHERE fragments with renumbered positional placeholders, so the set
// applied to a candidate is deterministic and side-effect free.
type filterStage struct {
	clause string
	args   []interface{}
}

// buildFilterStages turns a SearchFilters value into the ordered stage list
// appended to both pool queries. argID is the first free positional
// parameter index. Absent filters still produce a stage (an always-true
// clause) so every request runs the same stage count.
//
// Stage order: gender, experience, name, free-text search, preference,
// rating floor. The rating stage comes last because it reads the joined
// rating aggregate; the others only touch stylist columns.
func buildFilterStages(f models.SearchFilters, argID int) []filterStage {
	stages := make([]filterStage, 0, 6)

	gender := f.GenderFilter
	if len(gender) == 0 {
		gender = models.DefaultGenders
	}
	stages = append(stages, filterStage{
		clause: fmt.Sprintf("s.gender = ANY($%d)", argID),
		args:   []interface{}{pq.Array(gender)},
	})
	argID++

	if len(f.StylistLevels) > 0 {
		stages = append(stages, filterStage{
			clause: fmt.Sprintf("s.experience = ANY($%d)", argID),
			args:   []interface{}{pq.Array(f.StylistLevels)},
		})
		argID++
	} else {
		stages = append(stages, filterStage{clause: "TRUE"})
	}

	if f.NameFilter != "" {
		stages = append(stages, filterStage{
			clause: fmt.Sprintf("s.full_name ILIKE '%%' || $%d || '%%'", argID),
			args:   []interface{}{f.NameFilter},
		})
		argID++
	} else {
		stages = append(stages, filterStage{clause: "TRUE"})
	}

	if f.Search != "" {
		stages = append(stages, filterStage{
			clause: fmt.Sprintf("s.full_name ILIKE $%d || '%%'", argID),
			args:   []interface{}{f.Search},
		})
		argID++
	} else {
		stages = append(stages, filterStage{clause: "TRUE"})
	}

	preference := f.Preference
	if len(preference) == 0 {
		preference = models.DefaultGenders
	}
	stages = append(stages, filterStage{
		clause: fmt.Sprintf("s.gender = ANY($%d)", argID),
		args:   []interface{}{pq.Array(preference)},
	})
	argID++

	// 0 keeps the stage as a no-op floor rather than dropping it.
	stages = append(stages, filterStage{
		clause: fmt.Sprintf("COALESCE(r.avg_rating, 0) >= $%d", argID),
		args:   []interface{}{float64(f.RatingFilter)},
	})

	return stages
}

// flattenStages joins stage clauses into one AND-ed fragment and collects
// the stage arguments in clause order.
func flattenStages(stages []filterStage) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	for _, st := range stages {
		clause += " AND " + st.clause
		args = append(args, st.args...)
	}
	return clause, args
}
