package repositories

import (
	"errors"
	"fmt"
	"strings"

	"admin_backend/internal/utils"
)

var ErrInvalidQuery = errors.New("invalid list query")

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// keeps (page-1)*per_page well inside an int32 OFFSET
	MaxPage = 1 << 20
)

// ListParams carries paging, sorting and filtering of a listing request.
// Sort is a comma separated list of columns, "-" prefix for descending.
// Filter values are matched as case-insensitive substrings, commas meaning OR.
type ListParams struct {
	Page    int
	PerPage int
	Sort    string
	Filters map[string]string
}

// Normalized fills the paging defaults and caps per_page at MaxPerPage.
func (p ListParams) Normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

func (p ListParams) Offset() int {
	p = p.Normalized()
	return (p.Page - 1) * p.PerPage
}

// listQuery whitelists the columns a listing may filter and sort on.
type listQuery struct {
	table          string
	columns        string
	allowedFilters []string
	allowedSorts   []string
	defaultSort    string
}

// build returns the count and page queries with their arguments.
func (q listQuery) build(p ListParams) (countSQL, pageSQL string, args []any, err error) {
	p = p.Normalized()
	if p.Page > MaxPage {
		return "", "", nil, fmt.Errorf("%w: page %d is out of range", ErrInvalidQuery, p.Page)
	}

	var conditions []string
	for column, value := range p.Filters {
		if !utils.Contains(q.allowedFilters, column) {
			return "", "", nil, fmt.Errorf("%w: filter %q is not allowed", ErrInvalidQuery, column)
		}
		var alternatives []string
		for _, v := range strings.Split(value, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			args = append(args, "%"+v+"%")
			alternatives = append(alternatives, fmt.Sprintf("CAST(%s AS TEXT) ILIKE $%d", column, len(args)))
		}
		if len(alternatives) > 0 {
			conditions = append(conditions, "("+strings.Join(alternatives, " OR ")+")")
		}
	}

	sort := p.Sort
	if sort == "" {
		sort = q.defaultSort
	}
	var orders []string
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}
		if field != strings.TrimPrefix(q.defaultSort, "-") && !utils.Contains(q.allowedSorts, field) {
			return "", "", nil, fmt.Errorf("%w: sort %q is not allowed", ErrInvalidQuery, field)
		}
		orders = append(orders, field+" "+direction)
	}

	where := ""
	if len(conditions) > 0 {
		// map iteration order does not matter for AND-ed conditions
		where = " WHERE " + strings.Join(conditions, " AND ")
	}
	order := ""
	if len(orders) > 0 {
		order = " ORDER BY " + strings.Join(orders, ", ")
	}

	countSQL = "SELECT COUNT(*) FROM " + q.table + where
	pageSQL = fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		q.columns, q.table, where, order, p.PerPage, p.Offset())
	return countSQL, pageSQL, args, nil
}
