package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AdminServiceClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.accessToken = t
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccessToken(ctx, s.token()), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.token()), desc, cc, method, opts...)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended
// after the transport credentials and interceptors.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.streamAccessTokenInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(api.DefaultMessageLimit),
			grpc.MaxCallRecvMsgSize(api.DefaultMessageLimit),
		),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAdminServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError converts a gRPC status into a sentinel error or the server's
// message. An expired session also drops the stored token.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrTokenExpired.Error() {
			s.setToken("")
			return ErrSessionExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists:
		return errors.New(st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*api.SignInResponse, error) {
	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.GetAccessToken())
	return &api.SignInResponse{
		AccessToken: resp.GetAccessToken(),
		SessionID:   resp.GetSessionId(),
		ExpiresAt:   resp.GetExpiresAt().AsTime(),
	}, nil
}

// SignOut ends the server session. The local token is dropped even when
// the call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	if !s.SignedIn() {
		return ErrNotSignedIn
	}
	_, err := s.client.SignOut(ctx, &pb.Empty{})
	s.setToken("")
	return s.mapError(err)
}

func (s *GRPCClient) SignedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) List(ctx context.Context, coll string) (*api.ListEntitiesResponse, error) {
	resp, err := s.client.ListEntities(ctx, &pb.ListEntitiesRequest{Collection: coll})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &api.ListEntitiesResponse{Entities: api.ViewsFromProto(resp.GetEntities()), Focus: resp.GetFocus()}, nil
}

func (s *GRPCClient) entity(resp *pb.EntityResponse, err error) (collection.View, error) {
	if err != nil {
		return collection.View{}, s.mapError(err)
	}
	return api.ViewFromProto(resp.GetEntity()), nil
}

func (s *GRPCClient) Get(ctx context.Context, coll, id string) (collection.View, error) {
	return s.entity(s.client.GetEntity(ctx, &pb.EntityRef{Collection: coll, Id: id}))
}

func (s *GRPCClient) Create(ctx context.Context, coll string, fields models.Row, files []api.File) (collection.View, error) {
	f, err := api.RowToStruct(fields)
	if err != nil {
		return collection.View{}, err
	}
	return s.entity(s.client.CreateEntity(ctx, &pb.CreateEntityRequest{Collection: coll, Fields: f, Files: api.FilesToProto(files)}))
}

func (s *GRPCClient) Edit(ctx context.Context, coll, id string, fields models.Row, revert []string) (collection.View, error) {
	f, err := api.RowToStruct(fields)
	if err != nil {
		return collection.View{}, err
	}
	return s.entity(s.client.EditEntity(ctx, &pb.EditEntityRequest{Collection: coll, Id: id, Fields: f, Revert: revert}))
}

func (s *GRPCClient) Stage(ctx context.Context, coll, id string, f api.File) (*api.StageAttachmentResponse, error) {
	resp, err := s.client.StageAttachment(ctx, &pb.StageAttachmentRequest{Collection: coll, Id: id, File: api.FileToProto(f)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &api.StageAttachmentResponse{PreviewID: resp.GetPreviewId(), Entity: api.ViewFromProto(resp.GetEntity())}, nil
}

func (s *GRPCClient) Unstage(ctx context.Context, coll, id, slot string) (collection.View, error) {
	return s.entity(s.client.UnstageAttachment(ctx, &pb.UnstageAttachmentRequest{Collection: coll, Id: id, Slot: slot}))
}

func (s *GRPCClient) Discard(ctx context.Context, coll, id string) (collection.View, error) {
	return s.entity(s.client.DiscardEntity(ctx, &pb.EntityRef{Collection: coll, Id: id}))
}

func (s *GRPCClient) Save(ctx context.Context, coll, id string) (collection.View, error) {
	return s.entity(s.client.SaveEntity(ctx, &pb.EntityRef{Collection: coll, Id: id}))
}

func (s *GRPCClient) Delete(ctx context.Context, coll, id string) error {
	_, err := s.client.DeleteEntity(ctx, &pb.EntityRef{Collection: coll, Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) RemoveChild(ctx context.Context, coll, id, childID string) (collection.View, error) {
	return s.entity(s.client.RemoveChild(ctx, &pb.RemoveChildRequest{Collection: coll, Id: id, ChildId: childID}))
}

func (s *GRPCClient) ResolveURL(ctx context.Context, coll, key string) (string, error) {
	resp, err := s.client.ResolveURL(ctx, &pb.ResolveURLRequest{Collection: coll, Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCClient) SetQuoteFilter(ctx context.Context, tab string) ([]collection.View, error) {
	resp, err := s.client.SetQuoteFilter(ctx, &pb.SetQuoteFilterRequest{Tab: tab})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.ViewsFromProto(resp.GetEntities()), nil
}

func (s *GRPCClient) MarkQuoteSent(ctx context.Context, id string, sent bool) (collection.View, error) {
	return s.entity(s.client.MarkQuoteSent(ctx, &pb.MarkQuoteSentRequest{Id: id, Sent: sent}))
}

func (s *GRPCClient) ToggleQuoteReviewed(ctx context.Context, id string) (collection.View, error) {
	return s.entity(s.client.ToggleQuoteReviewed(ctx, &pb.IDRequest{Id: id}))
}

func (s *GRPCClient) MarkMessageRead(ctx context.Context, id string) (collection.View, error) {
	return s.entity(s.client.MarkMessageRead(ctx, &pb.IDRequest{Id: id}))
}

func (s *GRPCClient) ApproveTestimonial(ctx context.Context, id string) (collection.View, error) {
	return s.entity(s.client.ApproveTestimonial(ctx, &pb.IDRequest{Id: id}))
}

func (s *GRPCClient) Notices(ctx context.Context) (*api.ListNoticesResponse, error) {
	resp, err := s.client.ListNotices(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &api.ListNoticesResponse{Notices: api.NoticesFromProto(resp.GetNotices()), Unread: int(resp.GetUnread())}, nil
}

func (s *GRPCClient) MarkNoticeRead(ctx context.Context, id string) error {
	_, err := s.client.MarkNoticeRead(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) MarkAllNoticesRead(ctx context.Context) error {
	_, err := s.client.MarkAllNoticesRead(ctx, &pb.Empty{})
	return s.mapError(err)
}

func (s *GRPCClient) SelectNotice(ctx context.Context, id string) (notify.Notice, error) {
	resp, err := s.client.SelectNotice(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return notify.Notice{}, s.mapError(err)
	}
	return api.NoticeFromProto(resp.GetNotice()), nil
}

func (s *GRPCClient) DeleteNotice(ctx context.Context, id string) error {
	_, err := s.client.DeleteNotice(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) DeleteAllNotices(ctx context.Context) error {
	_, err := s.client.DeleteAllNotices(ctx, &pb.Empty{})
	return s.mapError(err)
}

// WatchNotices streams new notices until ctx ends or the server closes the
// stream; the channel is closed then.
func (s *GRPCClient) WatchNotices(ctx context.Context) (<-chan notify.Notice, error) {
	recv, err := s.client.WatchNotices(ctx, &pb.WatchNoticesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make(chan notify.Notice, 16)
	go func() {
		defer close(out)
		for {
			n, err := recv.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					_ = s.mapError(err)
				}
				return
			}
			select {
			case out <- api.NoticeFromProto(n):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
