package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

const historyColumns = "id, login, token_fp, started_at, finished_at, status, message, total_contributions"

// HistoryQuery builds a SELECT over fetch_history.
type HistoryQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

// NewHistoryQuery returns a query ordered newest first.
func NewHistoryQuery() *HistoryQuery {
	return &HistoryQuery{orderBy: "finished_at DESC"}
}

func (q *HistoryQuery) Where(filter string, args ...interface{}) *HistoryQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *HistoryQuery) WhereLogin(login string) *HistoryQuery {
	return q.Where("login = ?", login)
}

func (q *HistoryQuery) WhereStatus(status models.FetchStatus) *HistoryQuery {
	return q.Where("status = ?", status.String())
}

func (q *HistoryQuery) OrderBy(orderBy string) *HistoryQuery {
	q.orderBy = orderBy
	return q
}

func (q *HistoryQuery) Limit(limit int) *HistoryQuery {
	q.limit = limit
	return q
}

func (q *HistoryQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM fetch_history", historyColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
