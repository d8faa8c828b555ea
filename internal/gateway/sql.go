package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/dbx"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/google/uuid"
)

// Dialect selects the placeholder style of generated statements.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) placeholder(n int) string {
	if d == SQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}

// DialectFor maps a database/sql driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return 0, fmt.Errorf("unsupported driver %q", driver)
	}
}

// SQLGateway implements Gateway and Transactor over database/sql.
type SQLGateway struct {
	db       dbx.DBTX
	beginner dbx.TxBeginner
	dialect  Dialect
	schema   *Schema
	timeout  time.Duration
	observer Observer
	now      func() time.Time
	newID    func() string
}

type Option func(*SQLGateway)

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option { return func(g *SQLGateway) { g.timeout = d } }

func WithObserver(o Observer) Option { return func(g *SQLGateway) { g.observer = o } }

func WithClock(now func() time.Time) Option { return func(g *SQLGateway) { g.now = now } }

func WithIDGenerator(f func() string) Option { return func(g *SQLGateway) { g.newID = f } }

func NewSQLGateway(db *sql.DB, dialect Dialect, schema *Schema, opts ...Option) *SQLGateway {
	g := &SQLGateway{
		db:       db,
		beginner: db,
		dialect:  dialect,
		schema:   schema,
		timeout:  10 * time.Second,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Atomic runs fn in a database transaction. Calls made through the Gateway
// passed to fn share the transaction; nested Atomic calls join it.
func (g *SQLGateway) Atomic(ctx context.Context, fn func(ctx context.Context, g Gateway) error) error {
	if g.beginner == nil {
		return fn(ctx, g)
	}
	return dbx.WithTx(ctx, g.beginner, nil, func(ctx context.Context, tx dbx.DBTX) error {
		inTx := *g
		inTx.db = tx
		inTx.beginner = nil
		return fn(ctx, &inTx)
	})
}

func (g *SQLGateway) List(ctx context.Context, table string, q Query) (rows []models.Row, err error) {
	defer g.observe("list", table, time.Now(), &err)

	t, err := g.schema.Table(table)
	if err != nil {
		return nil, common.NewGatewayError("list", table, err)
	}

	var (
		sb   strings.Builder
		args []any
	)
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(t.Columns, ", "), t.Name)

	if len(q.Filters) > 0 {
		conds := make([]string, 0, len(q.Filters))
		for _, f := range q.Filters {
			if err := t.checkColumns(f.Column); err != nil {
				return nil, common.NewGatewayError("list", table, err)
			}
			switch f.Op {
			case OpIn:
				if len(f.Values) == 0 {
					return nil, nil
				}
				ph := make([]string, len(f.Values))
				for i, v := range f.Values {
					args = append(args, v)
					ph[i] = g.dialect.placeholder(len(args))
				}
				conds = append(conds, fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(ph, ", ")))
			default:
				args = append(args, f.Value)
				conds = append(conds, fmt.Sprintf("%s = %s", f.Column, g.dialect.placeholder(len(args))))
			}
		}
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if len(q.Orders) > 0 {
		parts := make([]string, 0, len(q.Orders))
		for _, o := range q.Orders {
			if err := t.checkColumns(o.Column); err != nil {
				return nil, common.NewGatewayError("list", table, err)
			}
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			parts = append(parts, o.Column+" "+dir)
		}
		sb.WriteString(" ORDER BY " + strings.Join(parts, ", "))
	}

	ctx, cancel := g.bound(ctx)
	defer cancel()

	res, err := g.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, g.wrap(ctx, "list", table, err)
	}
	rows, err = scanRows(res)
	if err != nil {
		return nil, g.wrap(ctx, "list", table, err)
	}
	return rows, nil
}

// Insert writes row and returns it as stored. A missing id is assigned
// here, as are missing timestamp columns.
func (g *SQLGateway) Insert(ctx context.Context, table string, row models.Row) (out models.Row, err error) {
	defer g.observe("insert", table, time.Now(), &err)

	t, err := g.schema.Table(table)
	if err != nil {
		return nil, common.NewGatewayError("insert", table, err)
	}

	row = row.Clone()
	if row.ID() == "" {
		row["id"] = g.newID()
	}
	now := g.now().UTC()
	for _, c := range t.Timestamps {
		if v, ok := row[c]; !ok || v == nil || isZeroTime(v) {
			row[c] = now
		}
	}

	cols := sortedKeys(row)
	if err := t.checkColumns(cols...); err != nil {
		return nil, common.NewGatewayError("insert", table, err)
	}

	ph := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		ph[i] = g.dialect.placeholder(i + 1)
		args[i] = row[c]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(cols, ", "), strings.Join(ph, ", "), strings.Join(t.Columns, ", "))

	ctx, cancel := g.bound(ctx)
	defer cancel()

	rows, err := g.queryRows(ctx, query, args)
	if err != nil {
		return nil, g.wrap(ctx, "insert", table, err)
	}
	if len(rows) == 0 {
		return nil, common.NewGatewayError("insert", table, errors.New("insert returned no row"))
	}
	return rows[0], nil
}

// Update applies patch to the row with the given id and returns the row as
// stored. An empty patch just reads the row back.
func (g *SQLGateway) Update(ctx context.Context, table, id string, patch models.Row) (out models.Row, err error) {
	defer g.observe("update", table, time.Now(), &err)

	t, err := g.schema.Table(table)
	if err != nil {
		return nil, common.NewGatewayError("update", table, err)
	}

	patch = patch.Clone()
	delete(patch, "id")
	if len(patch) == 0 {
		return Get(ctx, g, table, id)
	}

	cols := sortedKeys(patch)
	if err := t.checkColumns(cols...); err != nil {
		return nil, common.NewGatewayError("update", table, err)
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		args = append(args, patch[c])
		sets[i] = fmt.Sprintf("%s = %s", c, g.dialect.placeholder(len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s RETURNING %s",
		t.Name, strings.Join(sets, ", "), g.dialect.placeholder(len(args)), strings.Join(t.Columns, ", "))

	ctx, cancel := g.bound(ctx)
	defer cancel()

	rows, err := g.queryRows(ctx, query, args)
	if err != nil {
		return nil, g.wrap(ctx, "update", table, err)
	}
	if len(rows) == 0 {
		return nil, notFound("update", table)
	}
	return rows[0], nil
}

func (g *SQLGateway) Delete(ctx context.Context, table, id string) (err error) {
	defer g.observe("delete", table, time.Now(), &err)

	t, err := g.schema.Table(table)
	if err != nil {
		return common.NewGatewayError("delete", table, err)
	}

	ctx, cancel := g.bound(ctx)
	defer cancel()

	res, err := g.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = %s", t.Name, g.dialect.placeholder(1)), id)
	if err != nil {
		return g.wrap(ctx, "delete", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return g.wrap(ctx, "delete", table, err)
	}
	if n == 0 {
		return notFound("delete", table)
	}
	return nil
}

func (g *SQLGateway) queryRows(ctx context.Context, query string, args []any) ([]models.Row, error) {
	res, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanRows(res)
}

func (g *SQLGateway) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *SQLGateway) wrap(ctx context.Context, op, table string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &common.GatewayError{Op: op, Target: table, Message: "request timed out", Err: err}
	}
	return common.NewGatewayError(op, table, err)
}

func (g *SQLGateway) observe(op, table string, start time.Time, err *error) {
	if g.observer != nil {
		g.observer.ObserveGatewayCall(op, table, time.Since(start), *err)
	}
}

func isZeroTime(v any) bool {
	t, ok := v.(time.Time)
	return ok && t.IsZero()
}

func notFound(op, table string) error {
	return &common.GatewayError{Op: op, Target: table, Message: "row not found", Err: common.ErrorNotFound}
}

func scanRows(res *sql.Rows) ([]models.Row, error) {
	defer res.Close()

	cols, err := res.Columns()
	if err != nil {
		return nil, err
	}

	var out []models.Row
	for res.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := res.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(models.Row, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				vals[i] = string(b)
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, res.Err()
}

func sortedKeys(r models.Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
