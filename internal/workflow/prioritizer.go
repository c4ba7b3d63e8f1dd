package workflow

import (
	"sort"

	"github.com/centrominero/gil/internal/repository"
)

var priorityRank = map[repository.AlertPriority]int{
	repository.PriorityCritical: 3,
	repository.PriorityHigh:     2,
	repository.PriorityMedium:   1,
	repository.PriorityLow:      0,
}

// RankPending orders alerts by priority descending, then deadline ascending,
// then ID ascending. The input slice is not modified.
func RankPending(alerts []*repository.Alert) []*repository.Alert {
	ranked := make([]*repository.Alert, len(alerts))
	copy(ranked, alerts)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] > priorityRank[b.Priority]
		}
		if !a.Deadline.Equal(b.Deadline) {
			return a.Deadline.Before(b.Deadline)
		}
		return a.ID < b.ID
	})
	return ranked
}
