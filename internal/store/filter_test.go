package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name       string
		filters    []Filter
		startArg   int
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "empty",
			filters:    nil,
			startArg:   1,
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "equality",
			filters:    []Filter{Equality{Column: "category", Value: "art"}},
			startArg:   1,
			wantClause: " WHERE category = $1",
			wantArgs:   []interface{}{"art"},
		},
		{
			name: "in list numbers placeholders sequentially",
			filters: []Filter{
				In{Column: "type", Values: []interface{}{"list", "sale"}},
			},
			startArg:   1,
			wantClause: " WHERE type IN ($1, $2)",
			wantArgs:   []interface{}{"list", "sale"},
		},
		{
			name: "range both bounds",
			filters: []Filter{
				Range{Column: "price", Min: 1.0, Max: 10.0},
			},
			startArg:   1,
			wantClause: " WHERE price >= $1 AND price <= $2",
			wantArgs:   []interface{}{1.0, 10.0},
		},
		{
			name: "range open max",
			filters: []Filter{
				Range{Column: "price", Min: 5.0},
			},
			startArg:   1,
			wantClause: " WHERE price >= $1",
			wantArgs:   []interface{}{5.0},
		},
		{
			name: "keyword binds one argument across columns",
			filters: []Filter{
				Keyword{Columns: []string{"name", "description"}, Term: "punk"},
			},
			startArg:   1,
			wantClause: " WHERE (name ILIKE $1 OR description ILIKE $1)",
			wantArgs:   []interface{}{"%punk%"},
		},
		{
			name: "or combines sub-filters",
			filters: []Filter{
				Or{Filters: []Filter{
					Equality{Column: "owner", Value: "0xa"},
					Equality{Column: "creator", Value: "0xa"},
				}},
			},
			startArg:   1,
			wantClause: " WHERE (owner = $1 OR creator = $2)",
			wantArgs:   []interface{}{"0xa", "0xa"},
		},
		{
			name: "composed filters continue numbering",
			filters: []Filter{
				Equality{Column: "collection_id", Value: "c1"},
				In{Column: "type", Values: []interface{}{"offer", "offer_collection"}},
				Range{Column: "date", Min: int64(100)},
			},
			startArg:   2,
			wantClause: " WHERE collection_id = $2 AND type IN ($3, $4) AND date >= $5",
			wantArgs:   []interface{}{"c1", "offer", "offer_collection", int64(100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := buildWhere(tt.filters, tt.startArg)
			assert.Equal(t, tt.wantClause, clause)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestKeywordSearchMatchesEachWord(t *testing.T) {
	columns := []string{"name", "description"}

	clause, args := buildWhere([]Filter{keywordSearch(columns, "cool cats")}, 1)

	// The phrase and every word each get their own ILIKE group, so a
	// record named just "cats" matches a "cool cats" query
	assert.Equal(t,
		" WHERE ((name ILIKE $1 OR description ILIKE $1)"+
			" OR (name ILIKE $2 OR description ILIKE $2)"+
			" OR (name ILIKE $3 OR description ILIKE $3))",
		clause)
	require.Equal(t, []interface{}{"%cool cats%", "%cool%", "%cats%"}, args)
}

func TestKeywordSearchSingleWord(t *testing.T) {
	clause, args := buildWhere([]Filter{keywordSearch([]string{"name"}, "punk")}, 1)

	// A single word is not duplicated
	assert.Equal(t, " WHERE ((name ILIKE $1))", clause)
	require.Equal(t, []interface{}{"%punk%"}, args)
}
