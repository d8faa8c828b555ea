package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const (
	waitFor   = 2 * time.Second
	pollEvery = 5 * time.Millisecond
)

func newSQLiteGateway(t *testing.T) *gateway.SQLGateway {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(context.Background(), db, "sqlite"))

	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick = tick.Add(time.Second)
		return tick
	}
	return gateway.NewSQLGateway(db, gateway.SQLite, gateway.DefaultSchema(), gateway.WithClock(clock))
}

// flakyState counts gateway calls by "op table" and fails selected calls
// once.
type flakyState struct {
	mu    sync.Mutex
	calls []string
	count map[string]int
	fail  map[string]int
}

func newFlakyState() *flakyState {
	return &flakyState{count: map[string]int{}, fail: map[string]int{}}
}

// failOnce makes the nth call (1-based) of op on table fail.
func (s *flakyState) failOnce(op, table string, nth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op+" "+table] = s.count[op+" "+table] + nth
}

func (s *flakyState) hit(op, table string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := op + " " + table
	s.calls = append(s.calls, key)
	s.count[key]++
	if n, ok := s.fail[key]; ok && s.count[key] == n {
		delete(s.fail, key)
		return &common.GatewayError{Op: op, Target: table, Message: "connection reset", Err: errors.New("connection reset")}
	}
	return nil
}

func (s *flakyState) callLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *flakyState) n(op, table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count[op+" "+table]
}

type flakyGateway struct {
	next gateway.Gateway
	st   *flakyState
}

func (f *flakyGateway) List(ctx context.Context, table string, q gateway.Query) ([]models.Row, error) {
	if err := f.st.hit("list", table); err != nil {
		return nil, err
	}
	return f.next.List(ctx, table, q)
}

func (f *flakyGateway) Insert(ctx context.Context, table string, row models.Row) (models.Row, error) {
	if err := f.st.hit("insert", table); err != nil {
		return nil, err
	}
	return f.next.Insert(ctx, table, row)
}

func (f *flakyGateway) Update(ctx context.Context, table, id string, patch models.Row) (models.Row, error) {
	if err := f.st.hit("update", table); err != nil {
		return nil, err
	}
	return f.next.Update(ctx, table, id, patch)
}

func (f *flakyGateway) Delete(ctx context.Context, table, id string) error {
	if err := f.st.hit("delete", table); err != nil {
		return err
	}
	return f.next.Delete(ctx, table, id)
}

func (f *flakyGateway) Atomic(ctx context.Context, fn func(ctx context.Context, g gateway.Gateway) error) error {
	return gateway.Atomic(ctx, f.next, func(ctx context.Context, g gateway.Gateway) error {
		return fn(ctx, &flakyGateway{next: g, st: f.st})
	})
}

// plainGateway hides Atomic.
type plainGateway struct {
	gateway.Gateway
}

// countingBlobs wraps a MemoryStore, counting uploads and optionally
// failing or blocking them.
type countingBlobs struct {
	*blob.MemoryStore

	mu       sync.Mutex
	uploads  int
	failNext int
	block    chan struct{}
}

func (b *countingBlobs) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	b.mu.Lock()
	b.uploads++
	if b.failNext > 0 {
		b.failNext--
		b.mu.Unlock()
		return "", &common.GatewayError{Op: "upload", Target: bucket, Message: "network error", Err: errors.New("network error")}
	}
	block := b.block
	b.mu.Unlock()

	if block != nil {
		<-block
	}
	return b.MemoryStore.Upload(ctx, bucket, key, data, contentType, overwrite)
}

func (b *countingBlobs) uploadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uploads
}

type harness struct {
	raw    *gateway.SQLGateway
	st     *flakyState
	blobs  *countingBlobs
	router *notify.Router
	ctrl   *Controller
}

func newHarness(t *testing.T, schema Schema, wrap ...func(gateway.Gateway) gateway.Gateway) *harness {
	t.Helper()
	h := &harness{
		raw:    newSQLiteGateway(t),
		st:     newFlakyState(),
		blobs:  &countingBlobs{MemoryStore: blob.NewMemoryStore()},
		router: notify.NewRouter(),
	}
	var gw gateway.Gateway = &flakyGateway{next: h.raw, st: h.st}
	for _, w := range wrap {
		gw = w(gw)
	}

	var n int
	var mu sync.Mutex
	keyFn := func(prefix, filename string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s/k%d_%s", prefix, n, blob.CleanName(filename))
	}
	h.ctrl = New(schema, gw, h.blobs, logging.Nop{}, WithNotifier(h.router), WithKeyFunc(keyFn))
	return h
}

func (h *harness) insert(t *testing.T, table string, row models.Row) models.Row {
	t.Helper()
	out, err := h.raw.Insert(context.Background(), table, row)
	require.NoError(t, err)
	return out
}

func (h *harness) count(t *testing.T, table string, filters ...gateway.Filter) int {
	t.Helper()
	rows, err := h.raw.List(context.Background(), table, gateway.Query{Filters: filters})
	require.NoError(t, err)
	return len(rows)
}

func jpeg(name string) staging.LocalFile {
	return staging.LocalFile{Name: name, ContentType: "image/jpeg", Data: []byte("jpeg:" + name)}
}
