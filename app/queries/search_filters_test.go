package queries

import (
	"reflect"
	"strings"
	"testing"

	"github.com/danuarts/stylora-backend/app/models"
)

func TestBuildFilterStages_ConsistentStageCount(t *testing.T) {
	empty := buildFilterStages(models.SearchFilters{}, 9)
	full := buildFilterStages(models.SearchFilters{
		GenderFilter:  []string{"women"},
		StylistLevels: []string{models.ExperienceAdvanced},
		NameFilter:    "ann",
		Search:        "an",
		Preference:    []string{"women"},
		RatingFilter:  4,
	}, 9)

	if len(empty) != len(full) {
		t.Fatalf("stage count must not depend on which filters are set: %d vs %d", len(empty), len(full))
	}
	if len(empty) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(empty))
	}
}

func TestBuildFilterStages_Defaults(t *testing.T) {
	stages := buildFilterStages(models.SearchFilters{}, 9)

	// gender defaults to both, experience and name collapse to always-true
	if !strings.Contains(stages[0].clause, "s.gender = ANY($9)") {
		t.Fatalf("expected gender stage at $9, got %q", stages[0].clause)
	}
	if stages[1].clause != "TRUE" {
		t.Fatalf("absent experience filter must be an always-true stage, got %q", stages[1].clause)
	}
	if stages[2].clause != "TRUE" {
		t.Fatalf("absent name filter must be an always-true stage, got %q", stages[2].clause)
	}
	if stages[3].clause != "TRUE" {
		t.Fatalf("absent search filter must be an always-true stage, got %q", stages[3].clause)
	}

	// rating floor stays as an explicit >= 0 stage
	last := stages[len(stages)-1]
	if !strings.Contains(last.clause, "COALESCE(r.avg_rating, 0) >=") {
		t.Fatalf("expected rating floor stage, got %q", last.clause)
	}
	if last.args[0] != float64(0) {
		t.Fatalf("expected rating floor 0, got %v", last.args[0])
	}
}

func TestBuildFilterStages_ArgRenumbering(t *testing.T) {
	stages := buildFilterStages(models.SearchFilters{
		GenderFilter:  []string{"men"},
		StylistLevels: []string{models.ExperienceSenior},
		NameFilter:    "jo",
		Search:        "j",
		Preference:    []string{"men"},
		RatingFilter:  3,
	}, 9)

	clause, args := flattenStages(stages)
	for _, placeholder := range []string{"$9", "$10", "$11", "$12", "$13", "$14"} {
		if !strings.Contains(clause, placeholder) {
			t.Fatalf("expected placeholder %s in %q", placeholder, clause)
		}
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
}

func TestBuildFilterStages_Deterministic(t *testing.T) {
	f := models.SearchFilters{
		GenderFilter:  []string{"women", "men"},
		StylistLevels: []string{models.ExperienceAdvanced, models.ExperienceSenior},
		NameFilter:    "mar",
		RatingFilter:  2,
	}

	first := buildFilterStages(f, 9)
	second := buildFilterStages(f, 9)

	clauseA, _ := flattenStages(first)
	clauseB, _ := flattenStages(second)
	if clauseA != clauseB {
		t.Fatalf("filter stages must be deterministic:\n%s\n%s", clauseA, clauseB)
	}
}

func TestBuildFilterStages_PreferenceFallsBackToBothGenders(t *testing.T) {
	stages := buildFilterStages(models.SearchFilters{}, 9)

	// stage 4 is the preference stage; with no saved preference it must
	// still match both genders rather than vanish
	pref := stages[4]
	if !strings.Contains(pref.clause, "s.gender = ANY(") {
		t.Fatalf("expected preference stage, got %q", pref.clause)
	}
	if len(pref.args) != 1 {
		t.Fatalf("expected one preference arg, got %d", len(pref.args))
	}
}

func TestFlattenStages_KeepsClauseOrder(t *testing.T) {
	stages := []filterStage{
		{clause: "a = $1", args: []interface{}{1}},
		{clause: "TRUE"},
		{clause: "b = $2", args: []interface{}{2}},
	}

	clause, args := flattenStages(stages)
	if clause != " AND a = $1 AND TRUE AND b = $2" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if !reflect.DeepEqual(args, []interface{}{1, 2}) {
		t.Fatalf("unexpected args %v", args)
	}
}
