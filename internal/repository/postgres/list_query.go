package postgres

import (
	"fmt"
	"strings"

	"insdocs/internal/domain"
	"insdocs/internal/port"
)

// listClauses is the SQL tail built from a port.ListQuery: a WHERE clause
// with its arguments, an ORDER BY clause, and optional paging. Filter and
// sort fields are checked against a column whitelist so request input never
// reaches SQL as an identifier.
type listClauses struct {
	where      string
	order      string
	paging     string
	filterArgs []interface{}
	pageArgs   []interface{}
}

// allArgs returns the filter arguments followed by the paging arguments, in
// placeholder order.
func (c *listClauses) allArgs() []interface{} {
	return append(append([]interface{}{}, c.filterArgs...), c.pageArgs...)
}

// tail joins the clauses for use after a FROM (or a subquery alias).
func (c *listClauses) tail() string {
	parts := make([]string, 0, 3)
	if c.where != "" {
		parts = append(parts, c.where)
	}
	parts = append(parts, c.order)
	if c.paging != "" {
		parts = append(parts, c.paging)
	}
	return strings.Join(parts, " ")
}

func buildListClauses(q port.ListQuery, columns map[string]struct{}, defaultSort string) (*listClauses, error) {
	c := &listClauses{}

	var conds []string
	arg := 1
	for _, f := range q.Filters {
		if _, ok := columns[f.Field]; !ok {
			return nil, fmt.Errorf("%w: field %q", domain.ErrInvalidFilter, f.Field)
		}
		switch f.Op {
		case port.FilterEq:
			conds = append(conds, fmt.Sprintf("%s = $%d", f.Field, arg))
			c.filterArgs = append(c.filterArgs, f.Value)
		case port.FilterLike:
			conds = append(conds, fmt.Sprintf("%s::text ILIKE $%d", f.Field, arg))
			c.filterArgs = append(c.filterArgs, "%"+f.Value+"%")
		case port.FilterGt:
			conds = append(conds, fmt.Sprintf("%s > $%d", f.Field, arg))
			c.filterArgs = append(c.filterArgs, f.Value)
		case port.FilterLt:
			conds = append(conds, fmt.Sprintf("%s < $%d", f.Field, arg))
			c.filterArgs = append(c.filterArgs, f.Value)
		default:
			return nil, fmt.Errorf("%w: operator %q", domain.ErrInvalidFilter, f.Op)
		}
		arg++
	}
	if len(conds) > 0 {
		c.where = "WHERE " + strings.Join(conds, " AND ")
	}

	// defaultSort is repo-provided ("created_at DESC"), not request input
	if q.SortBy == "" {
		c.order = "ORDER BY " + defaultSort
	} else {
		if _, ok := columns[q.SortBy]; !ok {
			return nil, fmt.Errorf("%w: field %q", domain.ErrInvalidSort, q.SortBy)
		}
		dir := "ASC"
		if q.SortDesc {
			dir = "DESC"
		}
		c.order = fmt.Sprintf("ORDER BY %s %s", q.SortBy, dir)
	}

	if q.Limit > 0 {
		c.paging = fmt.Sprintf("LIMIT $%d OFFSET $%d", arg, arg+1)
		c.pageArgs = append(c.pageArgs, q.Limit, q.Offset)
	}

	return c, nil
}
