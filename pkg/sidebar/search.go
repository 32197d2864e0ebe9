package sidebar

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Hit is one quick-search result with its fuzzy match rank (lower is better).
type Hit struct {
	Item Item
	Rank int
}

// Search fuzzy-matches the query against the labels of visible items in the
// tree, sections first, then department actions. Disabled items still match:
// a grayed-out entry is discoverable, just not navigable.
func Search(tree *NavTree, query string) []Hit {
	if tree == nil || query == "" {
		return nil
	}
	var hits []Hit
	collect := func(items []Item) {
		for _, item := range items {
			if !item.Visible {
				continue
			}
			rank := fuzzy.RankMatchNormalizedFold(query, item.Label)
			if rank < 0 {
				continue
			}
			hits = append(hits, Hit{Item: item, Rank: rank})
		}
	}
	for _, section := range tree.Sections {
		collect(section.Items)
	}
	collect(tree.DepartmentActions)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Rank < hits[j].Rank
	})
	return hits
}
