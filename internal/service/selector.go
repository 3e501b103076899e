package service

import "alcyxob/workout-vibe/internal/domain"

// diverseLimitPerGroup bounds the fallback candidate set at this many
// exercises per distinct muscle group.
const diverseLimitPerGroup = 3

// SelectCandidates narrows the catalog down to the exercises offered to
// the generator for one request. This is a filter, not a retriever: all
// matches weigh equally and the generator chooses among them.
//
// When the description yields no recognized muscle group or equipment
// term, a diverse cross-group subset is returned instead so the generator
// is never starved of options.
func SelectCandidates(description string, catalog []domain.Exercise) []domain.Exercise {
	groups := ExtractMuscleGroups(description)
	equipment := ExtractEquipment(description)

	if len(groups) == 0 && len(equipment) == 0 {
		return diverseSet(catalog, diverseLimitPerGroup)
	}

	groupSet := toSet(groups)
	equipmentSet := toSet(equipment)

	var candidates []domain.Exercise
	seen := make(map[int]bool)
	for _, ex := range catalog {
		if seen[ex.ID] {
			continue
		}
		// OR across the two dimensions, exact match on each.
		if groupSet[ex.MuscleGroup] || equipmentSet[ex.Equipment] {
			seen[ex.ID] = true
			candidates = append(candidates, ex)
		}
	}
	return candidates
}

// diverseSet takes up to limitPerGroup exercises for each distinct muscle
// group and concatenates the per-group picks. Groups appear in the
// catalog's first-appearance order.
func diverseSet(catalog []domain.Exercise, limitPerGroup int) []domain.Exercise {
	var groups []string
	byGroup := make(map[string][]domain.Exercise)
	for _, ex := range catalog {
		if _, ok := byGroup[ex.MuscleGroup]; !ok {
			groups = append(groups, ex.MuscleGroup)
		}
		if len(byGroup[ex.MuscleGroup]) < limitPerGroup {
			byGroup[ex.MuscleGroup] = append(byGroup[ex.MuscleGroup], ex)
		}
	}

	var result []domain.Exercise
	for _, g := range groups {
		result = append(result, byGroup[g]...)
	}
	return result
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
