package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	notifyConn
	mu       sync.Mutex
	payloads []string
	execs    []string
	fail     error
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	c.mu.Lock()
	if len(c.payloads) > 0 {
		p := c.payloads[0]
		c.payloads = c.payloads[1:]
		c.mu.Unlock()
		return &pgconn.Notification{Channel: Channel, Payload: p}, nil
	}
	fail := c.fail
	c.mu.Unlock()
	if fail != nil {
		return nil, fail
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (c *fakeConn) Close(context.Context) error { return nil }

func TestListener_PublishesAndResyncsAfterReconnect(t *testing.T) {
	first := &fakeConn{
		payloads: []string{
			`{"table":"messages","op":"INSERT","new":{"id":"m1","name":"Ann"}}`,
			`not json`,
		},
		fail: errors.New("connection reset"),
	}
	second := &fakeConn{
		payloads: []string{`{"table":"messages","op":"DELETE","old":{"id":"m1"}}`},
	}
	conns := []*fakeConn{first, second}

	orig := connect
	t.Cleanup(func() { connect = orig })
	var calls int
	connect = func(ctx context.Context, dsn string) (notifyConn, error) {
		c := conns[calls]
		calls++
		return c, nil
	}

	hub := NewHub(logging.Nop{})
	defer hub.Close()
	var rec recorder
	hub.Subscribe(models.TableMessages, rec.handlers())

	l := NewListener("postgres://test", hub, logging.Nop{})
	l.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool {
		evs, resync := rec.snapshot()
		return len(evs) == 2 && resync == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	evs, _ := rec.snapshot()
	require.Equal(t, OpInsert, evs[0].Op)
	require.Equal(t, "Ann", evs[0].New.String("name"))
	require.Equal(t, OpDelete, evs[1].Op)
	require.Equal(t, []string{"LISTEN " + Channel}, first.execs)
}

func TestListener_CompletesPartialRows(t *testing.T) {
	conn := &fakeConn{
		payloads: []string{
			`{"table":"quotes","op":"INSERT","partial":true,"new":{"id":"q1","status":"new"}}`,
			`{"table":"quotes","op":"UPDATE","partial":true,"new":{"id":"q2"}}`,
			`{"table":"quotes","op":"DELETE","partial":true,"old":{"id":"q3"}}`,
		},
	}
	orig := connect
	t.Cleanup(func() { connect = orig })
	connect = func(context.Context, string) (notifyConn, error) { return conn, nil }

	var fetched []string
	var mu sync.Mutex
	fetch := func(_ context.Context, table, id string) (models.Row, error) {
		mu.Lock()
		fetched = append(fetched, table+"/"+id)
		mu.Unlock()
		if id == "q2" {
			return nil, &common.GatewayError{Op: "get", Target: table, Message: "row not found", Err: common.ErrorNotFound}
		}
		return models.Row{"id": id, "status": "new", "description": "a long description"}, nil
	}

	hub := NewHub(logging.Nop{})
	defer hub.Close()
	var rec recorder
	hub.Subscribe(models.TableQuotes, rec.handlers())

	l := NewListener("postgres://test", hub, logging.Nop{}, WithFetcher(fetch))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool {
		evs, _ := rec.snapshot()
		return len(evs) == 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	evs, _ := rec.snapshot()
	require.Equal(t, OpInsert, evs[0].Op)
	require.False(t, evs[0].Partial)
	require.Equal(t, "a long description", evs[0].New.String("description"))
	require.Equal(t, OpDelete, evs[1].Op, "an update of a row already gone is skipped")
	require.Equal(t, "q3", evs[1].ID())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"quotes/q1", "quotes/q2"}, fetched)
}

func TestDecodeNotification_Rejects(t *testing.T) {
	_, err := decodeNotification(`{"op":"INSERT"}`)
	require.Error(t, err)

	_, err = decodeNotification(`{"table":"quotes","op":"TRUNCATE"}`)
	require.Error(t, err)
}
