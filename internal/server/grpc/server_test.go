package grpc

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/console"
	"github.com/dmitrijs2005/landkeeper/internal/cryptox"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/intake"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"github.com/dmitrijs2005/landkeeper/internal/server/auth"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	_ "modernc.org/sqlite"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, newTestAuth(), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, newTestAuth(), nil, nil)
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

type stack struct {
	client pb.AdminServiceClient
	gw     gateway.Gateway
	mgr    *console.Manager
	blobs  *blob.MemoryStore
}

func newStack(t *testing.T) *stack {
	return newStackWithLimit(t, 0)
}

// newStackWithLimit serves AdminService over bufconn; a zero limit keeps
// the server's default message size.
func newStackWithLimit(t *testing.T, limit int) *stack {
	t.Helper()

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(context.Background(), db, "sqlite"))

	hub := feed.NewHub(logging.Nop{})
	t.Cleanup(hub.Close)
	gw := gateway.NewPublishing(gateway.NewSQLGateway(db, gateway.SQLite, gateway.DefaultSchema()), hub)
	blobs := blob.NewMemoryStore()

	authn := auth.NewService("admin@example.com", cryptox.HashPassword("hunter22"), []byte(testSecret), time.Hour, logging.Nop{})
	mgr := console.NewManager(console.Deps{Gateway: gw, Blobs: blobs, Feed: hub, Log: logging.Nop{}}, nil)
	t.Cleanup(mgr.CloseAll)

	s := NewGRPCServer("bufnet", logging.Nop{}, authn, mgr, intake.NewService(gw, blobs, logging.Nop{})).WithMessageLimit(limit)
	lis := bufconn.Listen(1 << 20)
	srv := s.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &stack{client: pb.NewAdminServiceClient(conn), gw: gw, mgr: mgr, blobs: blobs}
}

func (s *stack) signIn(t *testing.T) context.Context {
	t.Helper()
	resp, err := s.client.SignIn(context.Background(), &pb.SignInRequest{Email: " Admin@Example.com ", Password: "hunter22"})
	require.NoError(t, err)
	require.True(t, resp.GetExpiresAt().AsTime().After(time.Now()))
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, resp.GetAccessToken())
}

func fields(t *testing.T, r models.Row) *structpb.Struct {
	t.Helper()
	s, err := api.RowToStruct(r)
	require.NoError(t, err)
	return s
}

func TestEndToEnd_SignInRequiredForAdminCalls(t *testing.T) {
	st := newStack(t)

	_, err := st.client.ListEntities(context.Background(), &pb.ListEntitiesRequest{Collection: "projects"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = st.client.SignIn(context.Background(), &pb.SignInRequest{Email: "admin@example.com", Password: "wrong"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := st.signIn(t)
	resp, err := st.client.ListEntities(ctx, &pb.ListEntitiesRequest{Collection: "projects"})
	require.NoError(t, err)
	require.Empty(t, resp.GetEntities())

	_, err = st.client.ListEntities(ctx, &pb.ListEntitiesRequest{Collection: "invoices"})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = st.client.SignOut(ctx, &pb.Empty{})
	require.NoError(t, err)
	_, err = st.client.ListNotices(ctx, &pb.Empty{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestEndToEnd_CreateEditSaveDelete(t *testing.T) {
	st := newStack(t)
	ctx := st.signIn(t)

	_, err := st.client.CreateEntity(ctx, &pb.CreateEntityRequest{Collection: "projects", Fields: fields(t, models.Row{})})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	created, err := st.client.CreateEntity(ctx, &pb.CreateEntityRequest{
		Collection: "projects",
		Fields:     fields(t, models.Row{"title": "Backyard", "featured": false}),
		Files: []*pb.File{
			{Slot: "new-a/before_key", Name: "before.jpg", ContentType: "image/jpeg", Data: []byte("b")},
			{Slot: "new-a/after_key", Name: "after.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		},
	})
	require.NoError(t, err)
	id := created.GetEntity().GetId()
	require.Equal(t, "clean", created.GetEntity().GetState())
	require.Len(t, created.GetEntity().GetChildren(), 1)

	edited, err := st.client.EditEntity(ctx, &pb.EditEntityRequest{Collection: "projects", Id: id, Fields: fields(t, models.Row{"title": "Back yard"})})
	require.NoError(t, err)
	require.Equal(t, "dirty", edited.GetEntity().GetState())

	saved, err := st.client.SaveEntity(ctx, &pb.EntityRef{Collection: "projects", Id: id})
	require.NoError(t, err)
	require.Equal(t, "Back yard", api.ViewFromProto(saved.GetEntity()).Fields.String("title"))

	notices, err := st.client.ListNotices(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, notices.GetNotices())

	_, err = st.client.DeleteEntity(ctx, &pb.EntityRef{Collection: "projects", Id: id})
	require.NoError(t, err)
	_, err = st.client.GetEntity(ctx, &pb.EntityRef{Collection: "projects", Id: id})
	require.Equal(t, codes.NotFound, status.Code(err))

	rows, err := st.gw.List(context.Background(), models.TablePairs, gateway.Query{})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestEndToEnd_IntakeAndTestimonialApproval(t *testing.T) {
	st := newStack(t)
	ctx := st.signIn(t)

	_, err := st.client.SubmitTestimonial(context.Background(), &pb.SubmitTestimonialRequest{Name: "Cy"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	tr, err := st.client.SubmitTestimonial(context.Background(), &pb.SubmitTestimonialRequest{Name: "Cy", Text: "Great lawn"})
	require.NoError(t, err)

	list, err := st.client.ListTestimonials(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	require.Empty(t, list.GetTestimonials())

	require.Eventually(t, func() bool {
		_, err := st.client.GetEntity(ctx, &pb.EntityRef{Collection: "testimonials", Id: tr.GetId()})
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	approved, err := st.client.ApproveTestimonial(ctx, &pb.IDRequest{Id: tr.GetId()})
	require.NoError(t, err)
	require.True(t, api.ViewFromProto(approved.GetEntity()).Fields.Bool("approved"))

	list, err = st.client.ListTestimonials(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetTestimonials(), 1)
	require.Equal(t, "Great lawn", list.GetTestimonials()[0].GetText())

	msg, err := st.client.SubmitMessage(context.Background(), &pb.SubmitMessageRequest{Name: "Bot", Email: "b@b.b", Body: "x", BotField: "spam"})
	require.NoError(t, err)
	require.True(t, msg.GetAccepted())

	q, err := st.client.SubmitQuote(context.Background(), &pb.SubmitQuoteRequest{
		Name: "Ann", Email: "ann@example.com", Service: "Lawn care",
		Description: "Weekly mowing for a corner lot",
		Files:       []*pb.File{{Name: "yard.jpg", ContentType: "image/jpeg", Data: []byte("y")}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, q.GetQuoteId())

	require.Eventually(t, func() bool {
		_, err := st.client.GetEntity(ctx, &pb.EntityRef{Collection: "quotes", Id: q.GetQuoteId()})
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	sent, err := st.client.MarkQuoteSent(ctx, &pb.MarkQuoteSentRequest{Id: q.GetQuoteId(), Sent: true})
	require.NoError(t, err)
	require.Equal(t, models.QuoteStatusSent, api.ViewFromProto(sent.GetEntity()).Fields.String("status"))

	tab, err := st.client.SetQuoteFilter(ctx, &pb.SetQuoteFilterRequest{Tab: "new"})
	require.NoError(t, err)
	require.Empty(t, tab.GetEntities())
}

func TestEndToEnd_QuoteWithLargeFile(t *testing.T) {
	st := newStack(t)

	photo := bytes.Repeat([]byte{0xff}, 5<<20)
	q, err := st.client.SubmitQuote(context.Background(), &pb.SubmitQuoteRequest{
		Name: "Ann", Email: "ann@example.com", Service: "Hardscaping",
		Description: "Patio with a retaining wall",
		Files:       []*pb.File{{Name: "yard.jpg", ContentType: "image/jpeg", Data: photo}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, q.GetQuoteId())

	keys := st.blobs.Keys(models.BucketQuoteMedia)
	require.Len(t, keys, 1)
	data, ok := st.blobs.Get(models.BucketQuoteMedia, keys[0])
	require.True(t, ok)
	require.Len(t, data, len(photo))
}

func TestEndToEnd_MessageLimitApplies(t *testing.T) {
	st := newStackWithLimit(t, 2<<20)

	_, err := st.client.SubmitQuote(context.Background(), &pb.SubmitQuoteRequest{
		Name: "Ann", Email: "ann@example.com", Service: "Hardscaping",
		Description: "Patio with a retaining wall",
		Files:       []*pb.File{{Name: "yard.jpg", ContentType: "image/jpeg", Data: bytes.Repeat([]byte{1}, 3<<20)}},
	})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestEndToEnd_WatchNotices(t *testing.T) {
	st := newStack(t)
	ctx := st.signIn(t)

	// Opens the workspace so the bell is subscribed before the insert.
	_, err := st.client.ListNotices(ctx, &pb.Empty{})
	require.NoError(t, err)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	recv, err := st.client.WatchNotices(wctx, &pb.WatchNoticesRequest{})
	require.NoError(t, err)

	// The stream registers its watcher asynchronously; keep submitting
	// distinct messages until one arrives.
	got := make(chan string, 1)
	go func() {
		n, err := recv.Recv()
		if err == nil {
			got <- n.GetTitle()
		}
	}()

	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i++ {
		select {
		case title := <-got:
			require.Contains(t, title, "New message from")
			return
		case <-deadline:
			t.Fatal("no notice streamed")
		case <-tick.C:
			_, err := st.client.SubmitMessage(context.Background(), &pb.SubmitMessageRequest{
				Name: fmt.Sprintf("Visitor %d", i), Email: "v@example.com", Body: "Hello",
			})
			require.NoError(t, err)
		}
	}
}
