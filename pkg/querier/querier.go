// Package querier выполняет SQL в транзакции из контекста (см. pkg/tx),
// а вне транзакции - напрямую в пуле, и замеряет длительность запросов.
package querier

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "ordertracker",
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Duration of SQL statements until the first result",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"statement", "in_tx", "status"},
)

type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	executor, inTx := q.get(ctx)
	start := time.Now()
	tag, err := executor.Exec(ctx, sql, args...)
	observe(sql, inTx, start, err)
	return tag, err
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	executor, inTx := q.get(ctx)
	start := time.Now()
	rows, err := executor.Query(ctx, sql, args...)
	observe(sql, inTx, start, err)
	return rows, err
}

// QueryRow не видит ошибку до Scan, поэтому пишется в метрику со статусом ok.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	executor, inTx := q.get(ctx)
	start := time.Now()
	row := executor.QueryRow(ctx, sql, args...)
	observe(sql, inTx, start, nil)
	return row
}

func (q *Querier) get(ctx context.Context) (pgxv5.Tr, bool) {
	tr := q.getter.DefaultTrOrDB(ctx, q.pool)
	_, inTx := tr.(pgx.Tx)
	return tr, inTx
}

func observe(sql string, inTx bool, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	QueryDuration.
		WithLabelValues(statement(sql), strconv.FormatBool(inTx), status).
		Observe(time.Since(start).Seconds())
}

// statement - первое ключевое слово запроса; все прочее схлопывается
// в OTHER, чтобы метка не зависела от текста SQL.
func statement(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "OTHER"
	}
	switch verb := strings.ToUpper(fields[0]); verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "WITH":
		return verb
	default:
		return "OTHER"
	}
}
