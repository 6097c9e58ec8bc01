package match

// experienceLevels is the fixed tier ordering used for adjacency scoring.
var experienceLevels = []string{"entry", "mid", "senior", "lead"}

// levelIndex returns the tier's position in the fixed ordering, or -1 for
// unknown tier strings.
func levelIndex(level string) int {
	for i, l := range experienceLevels {
		if l == level {
			return i
		}
	}
	return -1
}

// AreAdjacent reports whether two tiers sit next to each other in the fixed
// ordering. Unknown tiers fail closed.
func AreAdjacent(a, b string) bool {
	ia, ib := levelIndex(a), levelIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	diff := ia - ib
	return diff == 1 || diff == -1
}

// IsOverqualified reports whether the user tier sits strictly above the job
// tier. Unknown tiers fail closed.
func IsOverqualified(userLevel, jobLevel string) bool {
	iu, ij := levelIndex(userLevel), levelIndex(jobLevel)
	if iu < 0 || ij < 0 {
		return false
	}
	return iu > ij
}

// AdjacentLevels returns the tier itself plus its neighbors, for catalog
// pre-filtering. Unknown tiers come back unchanged.
func AdjacentLevels(level string) []string {
	idx := levelIndex(level)
	if idx < 0 {
		return []string{level}
	}

	levels := []string{level}
	if idx > 0 {
		levels = append(levels, experienceLevels[idx-1])
	}
	if idx < len(experienceLevels)-1 {
		levels = append(levels, experienceLevels[idx+1])
	}
	return levels
}

// levelScore is the 0-20 experience-level component.
func levelScore(userLevel, jobLevel string) float64 {
	switch {
	case userLevel == jobLevel:
		return levelExactScore
	case AreAdjacent(userLevel, jobLevel):
		return levelAdjacentScore
	case IsOverqualified(userLevel, jobLevel):
		return levelOverqualified
	default:
		return 0
	}
}
