package intake

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newGateway(t *testing.T) *gateway.SQLGateway {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(context.Background(), db, "sqlite"))

	tick := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return gateway.NewSQLGateway(db, gateway.SQLite, gateway.DefaultSchema(), gateway.WithClock(clock))
}

type outcome struct {
	form string
	err  error
}

type fakeRecorder struct{ got []outcome }

func (f *fakeRecorder) IntakeSubmitted(form string, err error) {
	f.got = append(f.got, outcome{form, err})
}

// failingGateway fails every insert into one table.
type failingGateway struct {
	gateway.Gateway
	table string
}

func (f *failingGateway) Insert(ctx context.Context, table string, row models.Row) (models.Row, error) {
	if table == f.table {
		return nil, &common.GatewayError{Op: "insert", Target: table, Message: "permission denied", Err: errors.New("permission denied")}
	}
	return f.Gateway.Insert(ctx, table, row)
}

func (f *failingGateway) Atomic(ctx context.Context, fn func(ctx context.Context, g gateway.Gateway) error) error {
	return gateway.Atomic(ctx, f.Gateway, func(ctx context.Context, g gateway.Gateway) error {
		return fn(ctx, &failingGateway{Gateway: g, table: f.table})
	})
}

type failingBlobs struct {
	*blob.MemoryStore
	failAt, calls int
}

func (f *failingBlobs) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	f.calls++
	if f.calls == f.failAt {
		return "", &common.GatewayError{Op: "upload", Target: bucket, Message: "network error", Err: errors.New("network error")}
	}
	return f.MemoryStore.Upload(ctx, bucket, key, data, contentType, overwrite)
}

func validQuote() QuoteRequest {
	return QuoteRequest{
		Name:        " Ann Lee ",
		Email:       "ann@example.com",
		Phone:       "(905) 555-0101",
		City:        "Milton",
		Service:     "Garden bed restoration",
		Description: "Two beds along the driveway need new soil and edging.",
		ContactPref: "phone",
	}
}

func fixedID(s *Service) {
	s.newID = func() string { return "q1" }
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }
}

func TestSubmitQuote_StoresQuoteAndMedia(t *testing.T) {
	gw := newGateway(t)
	blobs := blob.NewMemoryStore()
	rec := &fakeRecorder{}
	s := NewService(gw, blobs, logging.Nop{}, WithRecorder(rec))
	fixedID(s)

	r := validQuote()
	r.Files = []File{
		{Name: "front yard.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		{Name: "walk.mp4", ContentType: "video/mp4", Data: []byte("mp4")},
	}
	q, err := s.SubmitQuote(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, "Ann Lee", q.Name)
	assert.Equal(t, models.QuoteStatusNew, q.Status)
	assert.Equal(t, "phone", q.ContactPref)
	assert.False(t, q.QuoteSent)

	assert.Equal(t, []string{
		"quotes/q1/1700000000123_0_front_yard.jpg",
		"quotes/q1/1700000000123_1_walk.mp4",
	}, blobs.Keys(models.BucketQuoteMedia))

	rows, err := gw.List(context.Background(), models.TableQuoteMedia, gateway.Query{Orders: []gateway.Order{gateway.Asc("sort_order")}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "q1", rows[0].String("quote_id"))
	assert.Equal(t, models.MediaImage, rows[0].String("kind"))
	assert.Equal(t, models.MediaVideo, rows[1].String("kind"))
	assert.Equal(t, int64(1), rows[1].Int("sort_order"))

	require.Len(t, rec.got, 1)
	assert.Equal(t, outcome{FormQuote, nil}, rec.got[0])
}

func TestSubmitQuote_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuoteRequest)
		field  string
	}{
		{"missing name", func(r *QuoteRequest) { r.Name = "  " }, "name"},
		{"bad email", func(r *QuoteRequest) { r.Email = "ann@example" }, "email"},
		{"bad phone", func(r *QuoteRequest) { r.Phone = "call me" }, "phone"},
		{"missing service", func(r *QuoteRequest) { r.Service = "" }, "service"},
		{"short description", func(r *QuoteRequest) { r.Description = "mow the lawn   " }, "description"},
		{"contact pref", func(r *QuoteRequest) { r.ContactPref = "fax" }, "contact_pref"},
		{"long description", func(r *QuoteRequest) { r.Description = strings.Repeat("é", maxLongText+1) }, "description"},
		{"long city", func(r *QuoteRequest) { r.City = strings.Repeat("x", maxShortText+1) }, "city"},
		{"empty file", func(r *QuoteRequest) { r.Files = []File{{Name: "a.jpg"}} }, "files[0]"},
		{"too many files", func(r *QuoteRequest) {
			for i := 0; i < 3; i++ {
				r.Files = append(r.Files, File{Name: "a.jpg", Data: []byte("x")})
			}
		}, "files"},
	}

	gw := newGateway(t)
	blobs := blob.NewMemoryStore()
	s := NewService(gw, blobs, logging.Nop{}, WithLimits(2, 0))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validQuote()
			tt.mutate(&r)
			_, err := s.SubmitQuote(context.Background(), r)

			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}

	rows, err := gw.List(context.Background(), models.TableQuotes, gateway.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, blobs.Keys(models.BucketQuoteMedia))
}

func TestSubmitQuote_OptionalPhoneAndDefaultPref(t *testing.T) {
	s := NewService(newGateway(t), blob.NewMemoryStore(), logging.Nop{})
	r := validQuote()
	r.Phone = ""
	r.ContactPref = ""

	q, err := s.SubmitQuote(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "email", q.ContactPref)
	assert.Empty(t, q.Phone)
}

func TestSubmitQuote_UploadFailureRemovesEarlierFiles(t *testing.T) {
	gw := newGateway(t)
	blobs := &failingBlobs{MemoryStore: blob.NewMemoryStore(), failAt: 2}
	rec := &fakeRecorder{}
	s := NewService(gw, blobs, logging.Nop{}, WithRecorder(rec))

	r := validQuote()
	r.Files = []File{
		{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	}
	_, err := s.SubmitQuote(context.Background(), r)

	var gerr *common.GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Empty(t, blobs.Keys(models.BucketQuoteMedia))

	rows, err := gw.List(context.Background(), models.TableQuotes, gateway.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.Len(t, rec.got, 1)
	assert.Error(t, rec.got[0].err)
}

func TestSubmitQuote_RowFailureRollsBackAndRemovesFiles(t *testing.T) {
	raw := newGateway(t)
	blobs := blob.NewMemoryStore()
	s := NewService(&failingGateway{Gateway: raw, table: models.TableQuoteMedia}, blobs, logging.Nop{})

	r := validQuote()
	r.Files = []File{{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")}}
	_, err := s.SubmitQuote(context.Background(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	assert.Empty(t, blobs.Keys(models.BucketQuoteMedia))
	rows, err := raw.List(context.Background(), models.TableQuotes, gateway.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSubmitMessage(t *testing.T) {
	gw := newGateway(t)
	rec := &fakeRecorder{}
	s := NewService(gw, blob.NewMemoryStore(), logging.Nop{}, WithRecorder(rec))
	ctx := context.Background()

	stored, err := s.SubmitMessage(ctx, MessageRequest{Name: "Dee", Email: "dee@example.com", Body: " Do you trim hedges? "})
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = s.SubmitMessage(ctx, MessageRequest{Name: "Bot", Email: "x@y.z", Body: "buy", BotField: "http://spam"})
	require.NoError(t, err)
	assert.False(t, stored)

	_, err = s.SubmitMessage(ctx, MessageRequest{Name: "Dee"})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "body")

	rows, err := gw.List(ctx, models.TableMessages, gateway.Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	m, err := models.MessageFromRow(rows[0])
	require.NoError(t, err)
	assert.Equal(t, "Do you trim hedges?", m.Body)
	assert.False(t, m.Read)
	assert.Empty(t, m.Subject)

	assert.Len(t, rec.got, 3)
}

func TestSubmitTestimonial_AndApprovedList(t *testing.T) {
	gw := newGateway(t)
	s := NewService(gw, blob.NewMemoryStore(), logging.Nop{})
	ctx := context.Background()

	first, err := s.SubmitTestimonial(ctx, TestimonialRequest{Name: "Cy", Text: "Great lawn"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.Rating)
	assert.False(t, first.Approved)

	second, err := s.SubmitTestimonial(ctx, TestimonialRequest{Name: "Di", Text: "Fast crew", Rating: 4})
	require.NoError(t, err)

	_, err = s.SubmitTestimonial(ctx, TestimonialRequest{Name: "Ed", Text: "ok", Rating: 6})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "rating")

	list, err := s.ApprovedTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, id := range []string{first.ID, second.ID} {
		_, err = gw.Update(ctx, models.TableTestimonials, id, models.Row{"approved": true})
		require.NoError(t, err)
	}

	list, err = s.ApprovedTestimonials(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSubmit_RejectsOversizedText(t *testing.T) {
	gw := newGateway(t)
	s := NewService(gw, blob.NewMemoryStore(), logging.Nop{})
	ctx := context.Background()

	long := strings.Repeat("a", maxLongText+1)

	_, err := s.SubmitMessage(ctx, MessageRequest{Name: "Dee", Email: "dee@example.com", Body: long})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "body")

	_, err = s.SubmitTestimonial(ctx, TestimonialRequest{Name: "Cy", Text: long})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "text")

	r := validQuote()
	r.Description = strings.Repeat("a", maxLongText)
	_, err = s.SubmitQuote(ctx, r)
	require.NoError(t, err, "the limit itself is accepted")
}
