package feed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Channel is the Postgres NOTIFY channel the row_changes trigger writes to.
const Channel = "row_changes"

type notifyConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

var connect = func(ctx context.Context, dsn string) (notifyConn, error) {
	return pgx.Connect(ctx, dsn)
}

// Fetcher reads one row by id.
type Fetcher func(ctx context.Context, table, id string) (models.Row, error)

// Listener turns Postgres notifications into Hub events. It reconnects on
// any connection failure and signals Hub.Reconnected once it is listening
// again.
type Listener struct {
	dsn     string
	hub     *Hub
	log     logging.Logger
	backoff time.Duration
	fetch   Fetcher
}

type ListenerOption func(*Listener)

// WithFetcher completes partial insert and update events by reading the
// row back before publishing.
func WithFetcher(f Fetcher) ListenerOption { return func(l *Listener) { l.fetch = f } }

func NewListener(dsn string, hub *Hub, log logging.Logger, opts ...ListenerOption) *Listener {
	l := &Listener{dsn: dsn, hub: hub, log: log, backoff: 2 * time.Second}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	connectedBefore := false

	for {
		err := l.listen(ctx, &connectedBefore)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn(ctx, "feed connection lost", "error", err, "retry_in", l.backoff.String())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.backoff):
		}
	}
}

func (l *Listener) listen(ctx context.Context, connectedBefore *bool) error {
	conn, err := connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}

	if *connectedBefore {
		l.hub.Reconnected()
	}
	*connectedBefore = true
	l.log.Info(ctx, "listening for row changes", "channel", Channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		ev, err := decodeNotification(n.Payload)
		if err != nil {
			l.log.Warn(ctx, "dropping malformed notification", "error", err)
			continue
		}
		if ev.Partial && !l.complete(ctx, &ev) {
			continue
		}
		l.hub.Publish(ev)
	}
}

// complete replaces the partial New row of ev with the stored one. It
// reports false when the row is gone, in which case a delete follows.
func (l *Listener) complete(ctx context.Context, ev *Event) bool {
	if l.fetch == nil || ev.Op == OpDelete || ev.New.ID() == "" {
		return true
	}
	row, err := l.fetch(ctx, ev.Table, ev.New.ID())
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return false
	case err != nil:
		l.log.Warn(ctx, "publishing partial row change", "table", ev.Table, "id", ev.New.ID(), "error", err)
		return true
	}
	ev.New = row
	ev.Partial = false
	return true
}

func decodeNotification(payload string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return Event{}, err
	}
	if ev.Table == "" {
		return Event{}, errors.New("notification without table")
	}
	switch ev.Op {
	case OpInsert, OpUpdate, OpDelete:
	default:
		return Event{}, errors.New("notification with unknown op " + string(ev.Op))
	}
	return ev, nil
}
