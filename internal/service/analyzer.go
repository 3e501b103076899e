package service

import "strings"

// Reference vocabularies for request analysis. Extraction results follow
// vocabulary order, not the order terms appear in the request.
var muscleGroupVocabulary = []string{
	"Chest", "Back", "Legs", "Shoulders", "Arms", "Biceps", "Triceps",
	"Abs", "Core", "Glutes", "Quads", "Hamstrings", "Calves",
}

var equipmentVocabulary = []string{
	"Barbell", "Dumbbells", "Machine", "Cable", "Bodyweight",
	"Kettlebell", "Resistance Band", "Smith Machine", "TRX",
}

// ExtractMuscleGroups returns the muscle-group vocabulary entries that
// occur as case-insensitive substrings of the request text.
//
// Matching is pure substring membership with no word-boundary checks:
// "arms" matches inside "firearms". Tightening this changes recall for
// existing users and needs a product decision first.
func ExtractMuscleGroups(text string) []string {
	return extractTerms(text, muscleGroupVocabulary)
}

// ExtractEquipment returns the equipment vocabulary entries that occur as
// case-insensitive substrings of the request text.
func ExtractEquipment(text string) []string {
	return extractTerms(text, equipmentVocabulary)
}

func extractTerms(text string, vocabulary []string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, term := range vocabulary {
		if containsTerm(lowered, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}

// containsTerm reports whether term occurs in the lowered text. A trailing
// plural "s" on the term is optional so "dumbbell" matches "Dumbbells".
func containsTerm(lowered, term string) bool {
	if strings.Contains(lowered, term) {
		return true
	}
	if singular, ok := strings.CutSuffix(term, "s"); ok {
		return strings.Contains(lowered, singular)
	}
	return false
}
