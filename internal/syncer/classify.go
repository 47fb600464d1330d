package syncer

import (
	"math"
	"strings"

	"github.com/rsoares/roadmap/internal/domain"
	"github.com/rsoares/roadmap/internal/tracker"
)

// Tracker status names are free text and often localized, so both
// classifiers match case-insensitive substrings against fixed keyword
// sets rather than exact names.
var (
	doneKeywords       = []string{"done", "concluído", "fechado", "closed", "resolved"}
	inProgressKeywords = []string{"progress", "andamento", "desenvolvimento", "review"}
)

func isDoneStatus(name string) bool {
	return matchesAny(name, doneKeywords)
}

// classifyStatus maps a tracker status name onto the local three-value
// status. Done keywords win over in-progress keywords; anything
// unrecognized is treated as not started.
func classifyStatus(name string) domain.ItemStatus {
	switch {
	case matchesAny(name, doneKeywords):
		return domain.StatusDone
	case matchesAny(name, inProgressKeywords):
		return domain.StatusInProgress
	default:
		return domain.StatusTodo
	}
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// rollupProgress derives an epic's progress from its children: the
// rounded percentage of children in a done status. Zero children means
// zero progress.
func rollupProgress(children []tracker.Issue) int {
	if len(children) == 0 {
		return 0
	}
	done := 0
	for _, child := range children {
		if isDoneStatus(child.StatusName) {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(children)) * 100))
}
