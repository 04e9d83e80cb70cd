package memory

import (
	"cmp"
	"slices"

	"jobfinder-chatbot/internal/catalog"
)

func sortedJobs(jobs []catalog.Job) []catalog.Job {
	out := slices.Clone(jobs)
	slices.SortFunc(out, func(a, b catalog.Job) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
