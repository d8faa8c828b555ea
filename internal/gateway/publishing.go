package gateway

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/models"
)

// Publisher receives row events after a mutation succeeds. *feed.Hub
// implements it.
type Publisher interface {
	Publish(ev feed.Event)
}

// Publishing wraps a Gateway and publishes a feed event for every
// successful mutation. It stands in for a database-side change feed when
// the backend has none (SQLite). Events raised inside Atomic are held back
// until the transaction commits.
type Publishing struct {
	next Gateway
	pub  Publisher
}

func NewPublishing(next Gateway, pub Publisher) *Publishing {
	return &Publishing{next: next, pub: pub}
}

func (p *Publishing) List(ctx context.Context, table string, q Query) ([]models.Row, error) {
	return p.next.List(ctx, table, q)
}

func (p *Publishing) Insert(ctx context.Context, table string, row models.Row) (models.Row, error) {
	out, err := p.next.Insert(ctx, table, row)
	if err != nil {
		return nil, err
	}
	p.pub.Publish(feed.Event{Table: table, Op: feed.OpInsert, New: out})
	return out, nil
}

func (p *Publishing) Update(ctx context.Context, table, id string, patch models.Row) (models.Row, error) {
	old, err := Get(ctx, p.next, table, id)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	out, err := p.next.Update(ctx, table, id, patch)
	if err != nil {
		return nil, err
	}
	p.pub.Publish(feed.Event{Table: table, Op: feed.OpUpdate, New: out, Old: old})
	return out, nil
}

func (p *Publishing) Delete(ctx context.Context, table, id string) error {
	old, err := Get(ctx, p.next, table, id)
	if err != nil {
		return err
	}
	if err := p.next.Delete(ctx, table, id); err != nil {
		return err
	}
	p.pub.Publish(feed.Event{Table: table, Op: feed.OpDelete, Old: old})
	return nil
}

func (p *Publishing) Atomic(ctx context.Context, fn func(ctx context.Context, g Gateway) error) error {
	var pending pendingEvents
	err := Atomic(ctx, p.next, func(ctx context.Context, g Gateway) error {
		return fn(ctx, &Publishing{next: g, pub: &pending})
	})
	if err != nil {
		return err
	}
	for _, ev := range pending {
		p.pub.Publish(ev)
	}
	return nil
}

type pendingEvents []feed.Event

func (pe *pendingEvents) Publish(ev feed.Event) { *pe = append(*pe, ev) }
