package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

var testColumns = map[string]struct{}{
	"policy_number": {},
	"issue_date":    {},
	"created_at":    {},
}

func TestBuildListClauses_Defaults(t *testing.T) {
	c, err := buildListClauses(port.ListQuery{}, testColumns, "created_at DESC")
	require.NoError(t, err)
	assert.Empty(t, c.where)
	assert.Equal(t, "ORDER BY created_at DESC", c.order)
	assert.Empty(t, c.paging)
	assert.Empty(t, c.allArgs())
	assert.Equal(t, "ORDER BY created_at DESC", c.tail())
}

func TestBuildListClauses_FiltersAndPaging(t *testing.T) {
	q := port.ListQuery{
		Filters: []port.Filter{
			{Field: "policy_number", Op: port.FilterLike, Value: "ABC"},
			{Field: "issue_date", Op: port.FilterGt, Value: "2025-01-01"},
		},
		SortBy:   "issue_date",
		SortDesc: true,
		Offset:   20,
		Limit:    10,
	}
	c, err := buildListClauses(q, testColumns, "created_at DESC")
	require.NoError(t, err)

	assert.Equal(t, "WHERE policy_number::text ILIKE $1 AND issue_date > $2", c.where)
	assert.Equal(t, "ORDER BY issue_date DESC", c.order)
	assert.Equal(t, "LIMIT $3 OFFSET $4", c.paging)
	assert.Equal(t, []interface{}{"%ABC%", "2025-01-01", 10, 20}, c.allArgs())
}

func TestBuildListClauses_EqOperator(t *testing.T) {
	q := port.ListQuery{
		Filters: []port.Filter{{Field: "policy_number", Op: port.FilterEq, Value: "ABC-123"}},
	}
	c, err := buildListClauses(q, testColumns, "created_at DESC")
	require.NoError(t, err)
	assert.Equal(t, "WHERE policy_number = $1", c.where)
	assert.Equal(t, []interface{}{"ABC-123"}, c.filterArgs)
}

func TestBuildListClauses_RejectsUnknownField(t *testing.T) {
	q := port.ListQuery{
		Filters: []port.Filter{{Field: "id; DROP TABLE users", Op: port.FilterEq, Value: "x"}},
	}
	_, err := buildListClauses(q, testColumns, "created_at DESC")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestBuildListClauses_RejectsUnknownOperator(t *testing.T) {
	q := port.ListQuery{
		Filters: []port.Filter{{Field: "policy_number", Op: port.FilterOp("ne"), Value: "x"}},
	}
	_, err := buildListClauses(q, testColumns, "created_at DESC")
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestBuildListClauses_RejectsUnknownSortField(t *testing.T) {
	q := port.ListQuery{SortBy: "password_hash"}
	_, err := buildListClauses(q, testColumns, "created_at DESC")
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
}
