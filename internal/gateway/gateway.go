// Package gateway is the remote table gateway: request/response access to
// whitelisted tables, returning whole rows. It performs no retries; every
// failure is a *common.GatewayError.
package gateway

import (
	"context"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/models"
)

// Gateway reads and mutates rows of one logical store.
type Gateway interface {
	List(ctx context.Context, table string, q Query) ([]models.Row, error)
	Insert(ctx context.Context, table string, row models.Row) (models.Row, error)
	Update(ctx context.Context, table, id string, patch models.Row) (models.Row, error)
	Delete(ctx context.Context, table, id string) error
}

// Transactor is implemented by gateways able to run several calls in one
// remote transaction. fn must only use the Gateway it is handed.
type Transactor interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, g Gateway) error) error
}

// Atomic runs fn inside a transaction when g supports one, and directly
// against g otherwise.
func Atomic(ctx context.Context, g Gateway, fn func(ctx context.Context, g Gateway) error) error {
	if tr, ok := g.(Transactor); ok {
		return tr.Atomic(ctx, fn)
	}
	return fn(ctx, g)
}

// Observer receives per-call timings. The metrics package implements it.
type Observer interface {
	ObserveGatewayCall(op, table string, d time.Duration, err error)
}

// Get fetches a single row by id.
func Get(ctx context.Context, g Gateway, table, id string) (models.Row, error) {
	rows, err := g.List(ctx, table, Query{Filters: []Filter{Eq("id", id)}})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound("get", table)
	}
	return rows[0], nil
}
