package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchTree() *NavTree {
	return &NavTree{
		Sections: []Section{
			{
				ID: "teaching",
				Items: []Item{
					{ID: "courses", Label: "Courses", Visible: true, Enabled: true},
					{ID: "grading", Label: "Grading", Visible: true, Enabled: false},
					{ID: "hidden", Label: "Course Archive", Visible: false},
				},
			},
		},
		DepartmentActions: []Item{
			{ID: "grade-book", Label: "Grade book", Visible: true, Enabled: true},
		},
	}
}

func TestSearch(t *testing.T) {
	hits := Search(searchTree(), "grad")
	require.Len(t, hits, 2)
	ids := []string{hits[0].Item.ID, hits[1].Item.ID}
	assert.Contains(t, ids, "grading")
	assert.Contains(t, ids, "grade-book")
}

func TestSearch_SkipsInvisibleItems(t *testing.T) {
	hits := Search(searchTree(), "archive")
	assert.Empty(t, hits)
}

func TestSearch_DisabledItemsStillMatch(t *testing.T) {
	hits := Search(searchTree(), "grading")
	require.Len(t, hits, 1)
	assert.False(t, hits[0].Item.Enabled)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Nil(t, Search(searchTree(), ""))
	assert.Nil(t, Search(nil, "x"))
}
