package search

import (
	"sort"

	"github.com/DSTX70/teamhub-search/internal/domain/search/candidate"
	"github.com/DSTX70/teamhub-search/internal/domain/search/page"
)

// fuse concatenates the per-provider candidate lists, sorts them by the
// result total order (score desc, type asc, id asc), and cuts one page.
// The count reflects the full eligible set, not the returned slice.
//
// Full materialization before the sort is deliberate: the matching
// predicates bound per-provider volume, and a streaming top-K would buy
// little while making the tie-break order harder to reason about.
func fuse(lists [][]candidate.Candidate, limit, offset int) page.Page {
	var all []candidate.Candidate
	for _, l := range lists {
		all = append(all, l...)
	}

	sort.Slice(all, func(i, j int) bool {
		return candidate.Less(&all[i], &all[j])
	})

	count := len(all)
	if offset >= count {
		return page.New(count, limit, offset, nil)
	}
	end := offset + limit
	if end > count {
		end = count
	}
	return page.New(count, limit, offset, all[offset:end])
}
