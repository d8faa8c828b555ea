package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/console"
	"github.com/dmitrijs2005/landkeeper/internal/intake"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps domain errors onto gRPC codes. Gateway and step failures
// keep their admin-readable message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, collection.ErrBusy):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, common.ErrorInternal):
		return status.Error(codes.Internal, "internal error")
	default:
		return status.Error(codes.Internal, collection.Message(err))
	}
}

func (s *GRPCServer) workspace(ctx context.Context) (*console.Workspace, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	exp := claims.ExpiresAt
	if exp == nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	w, err := s.sessions.Acquire(ctx, claims.SessionID, claims.Email, exp.Time)
	if err != nil {
		return nil, toStatus(err)
	}
	return w, nil
}

func (s *GRPCServer) controller(ctx context.Context, name string) (*console.Workspace, *collection.Controller, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, nil, err
	}
	c, err := w.Controller(name)
	if err != nil {
		return nil, nil, toStatus(err)
	}
	return w, c, nil
}

func entityResponse(v collection.View) (*pb.EntityResponse, error) {
	pv, err := api.ViewToProto(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.EntityResponse{Entity: pv}, nil
}

func entity(c *collection.Controller, id string) (*pb.EntityResponse, error) {
	v, err := c.Get(id)
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func listResponse(views []collection.View, focus string) (*pb.ListEntitiesResponse, error) {
	list, err := api.ViewsToProto(views)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.ListEntitiesResponse{Entities: list, Focus: focus}, nil
}

func localFile(f *pb.File) staging.LocalFile {
	return staging.LocalFile{Name: f.GetName(), ContentType: f.GetContentType(), Data: f.GetData()}
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	sess, err := s.auth.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SignInResponse{AccessToken: sess.Token, SessionId: sess.ID, ExpiresAt: timestamppb.New(sess.ExpiresAt)}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	exp := s.now()
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	s.sessions.SignOut(claims.SessionID, exp)
	s.logger.Info(ctx, "admin signed out")
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListEntities(ctx context.Context, req *pb.ListEntitiesRequest) (*pb.ListEntitiesResponse, error) {
	w, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	focus, _ := w.Router.ConsumeFocus(string(c.Schema().Kind))
	return listResponse(c.List(), focus)
}

func (s *GRPCServer) GetEntity(ctx context.Context, req *pb.EntityRef) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	return entity(c, req.GetId())
}

func (s *GRPCServer) CreateEntity(ctx context.Context, req *pb.CreateEntityRequest) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}

	d := collection.Draft{Fields: api.RowFromStruct(req.GetFields()), Files: map[staging.Slot]staging.LocalFile{}}
	if d.Fields == nil {
		d.Fields = map[string]any{}
	}
	for _, f := range req.GetFiles() {
		slot, err := staging.ParseSlot(f.GetSlot())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		d.Files[slot] = localFile(f)
	}

	v, err := c.Create(ctx, d)
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) EditEntity(ctx context.Context, req *pb.EditEntityRequest) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	if fields := api.RowFromStruct(req.GetFields()); len(fields) > 0 {
		if err := c.Edit(req.GetId(), fields); err != nil {
			return nil, toStatus(err)
		}
	}
	for _, col := range req.GetRevert() {
		if err := c.RevertField(ctx, req.GetId(), col); err != nil {
			return nil, toStatus(err)
		}
	}
	return entity(c, req.GetId())
}

func (s *GRPCServer) StageAttachment(ctx context.Context, req *pb.StageAttachmentRequest) (*pb.StageAttachmentResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	slot, err := staging.ParseSlot(req.GetFile().GetSlot())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	previewID, err := c.StageAttachment(req.GetId(), slot, localFile(req.GetFile()))
	if err != nil {
		return nil, toStatus(err)
	}
	e, err := entity(c, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.StageAttachmentResponse{PreviewId: previewID, Entity: e.Entity}, nil
}

func (s *GRPCServer) UnstageAttachment(ctx context.Context, req *pb.UnstageAttachmentRequest) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	slot, err := staging.ParseSlot(req.GetSlot())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := c.Unstage(ctx, req.GetId(), slot); err != nil {
		return nil, toStatus(err)
	}
	return entity(c, req.GetId())
}

func (s *GRPCServer) DiscardEntity(ctx context.Context, req *pb.EntityRef) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	if err := c.Discard(ctx, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return entity(c, req.GetId())
}

func (s *GRPCServer) SaveEntity(ctx context.Context, req *pb.EntityRef) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	v, err := c.Save(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) DeleteEntity(ctx context.Context, req *pb.EntityRef) (*pb.Empty, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	if err := c.Delete(ctx, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RemoveChild(ctx context.Context, req *pb.RemoveChildRequest) (*pb.EntityResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	if err := c.RemoveChild(ctx, req.GetId(), req.GetChildId()); err != nil {
		return nil, toStatus(err)
	}
	return entity(c, req.GetId())
}

func (s *GRPCServer) ResolveURL(ctx context.Context, req *pb.ResolveURLRequest) (*pb.ResolveURLResponse, error) {
	_, c, err := s.controller(ctx, req.GetCollection())
	if err != nil {
		return nil, err
	}
	u, err := c.ResolveURL(ctx, req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResolveURLResponse{Url: u}, nil
}

func (s *GRPCServer) SetQuoteFilter(ctx context.Context, req *pb.SetQuoteFilterRequest) (*pb.ListEntitiesResponse, error) {
	w, c, err := s.controller(ctx, collection.Quotes.Name)
	if err != nil {
		return nil, err
	}
	if err := w.SetQuoteTab(ctx, req.GetTab()); err != nil {
		return nil, toStatus(err)
	}
	return listResponse(c.List(), "")
}

func (s *GRPCServer) MarkQuoteSent(ctx context.Context, req *pb.MarkQuoteSentRequest) (*pb.EntityResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	v, err := w.MarkQuoteSent(ctx, req.GetId(), req.GetSent(), s.now())
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) ToggleQuoteReviewed(ctx context.Context, req *pb.IDRequest) (*pb.EntityResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	v, err := w.ToggleReviewed(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) MarkMessageRead(ctx context.Context, req *pb.IDRequest) (*pb.EntityResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	v, err := w.MarkMessageRead(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) ApproveTestimonial(ctx context.Context, req *pb.IDRequest) (*pb.EntityResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	v, err := w.ApproveTestimonial(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return entityResponse(v)
}

func (s *GRPCServer) ListNotices(ctx context.Context, _ *pb.Empty) (*pb.ListNoticesResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	resp := &pb.ListNoticesResponse{Unread: int32(w.Router.UnreadCount())}
	for _, n := range w.Router.List() {
		resp.Notices = append(resp.Notices, api.NoticeToProto(n))
	}
	return resp, nil
}

func (s *GRPCServer) MarkNoticeRead(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	if !w.Router.MarkRead(req.GetId()) {
		return nil, status.Error(codes.NotFound, "notice not found")
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) MarkAllNoticesRead(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	w.Router.MarkAllRead()
	return &pb.Empty{}, nil
}

func (s *GRPCServer) SelectNotice(ctx context.Context, req *pb.IDRequest) (*pb.NoticeResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	n, ok := w.Router.Select(req.GetId())
	if !ok {
		return nil, status.Error(codes.NotFound, "notice not found")
	}
	return &pb.NoticeResponse{Notice: api.NoticeToProto(n)}, nil
}

func (s *GRPCServer) ConsumeFocus(ctx context.Context, req *pb.ConsumeFocusRequest) (*pb.ConsumeFocusResponse, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	id, ok := w.Router.ConsumeFocus(req.GetKind())
	return &pb.ConsumeFocusResponse{SubjectId: id, Found: ok}, nil
}

func (s *GRPCServer) DeleteNotice(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	if !w.Router.DeleteOne(req.GetId()) {
		return nil, status.Error(codes.NotFound, "notice not found")
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) DeleteAllNotices(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	w, err := s.workspace(ctx)
	if err != nil {
		return nil, err
	}
	w.Router.DeleteAll()
	return &pb.Empty{}, nil
}

// WatchNotices streams notices until the client goes away or the session
// ends.
func (s *GRPCServer) WatchNotices(_ *pb.WatchNoticesRequest, stream grpc.ServerStreamingServer[pb.Notice]) error {
	ctx := stream.Context()
	w, err := s.workspace(ctx)
	if err != nil {
		return err
	}
	for n := range w.Router.Watch(ctx) {
		if err := stream.Send(api.NoticeToProto(n)); err != nil {
			return err
		}
	}
	return nil
}

func (s *GRPCServer) SubmitQuote(ctx context.Context, req *pb.SubmitQuoteRequest) (*pb.SubmitQuoteResponse, error) {
	r := intake.QuoteRequest{
		Name:        req.GetName(),
		Email:       req.GetEmail(),
		Phone:       req.GetPhone(),
		Address:     req.GetAddress(),
		City:        req.GetCity(),
		Service:     req.GetService(),
		Description: req.GetDescription(),
		ContactPref: req.GetContactPref(),
	}
	for _, f := range req.GetFiles() {
		r.Files = append(r.Files, intake.File{Name: f.GetName(), ContentType: f.GetContentType(), Data: f.GetData()})
	}

	q, err := s.intake.SubmitQuote(ctx, r)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitQuoteResponse{QuoteId: q.ID}, nil
}

func (s *GRPCServer) SubmitMessage(ctx context.Context, req *pb.SubmitMessageRequest) (*pb.SubmitMessageResponse, error) {
	_, err := s.intake.SubmitMessage(ctx, intake.MessageRequest{
		Name:     req.GetName(),
		Email:    req.GetEmail(),
		Phone:    req.GetPhone(),
		Subject:  req.GetSubject(),
		Body:     req.GetBody(),
		BotField: req.GetBotField(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitMessageResponse{Accepted: true}, nil
}

func (s *GRPCServer) SubmitTestimonial(ctx context.Context, req *pb.SubmitTestimonialRequest) (*pb.SubmitTestimonialResponse, error) {
	t, err := s.intake.SubmitTestimonial(ctx, intake.TestimonialRequest{Name: req.GetName(), Text: req.GetText(), Rating: int(req.GetRating())})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitTestimonialResponse{Id: t.ID}, nil
}

func (s *GRPCServer) ListTestimonials(ctx context.Context, _ *pb.Empty) (*pb.ListTestimonialsResponse, error) {
	list, err := s.intake.ApprovedTestimonials(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListTestimonialsResponse{}
	for _, t := range list {
		resp.Testimonials = append(resp.Testimonials, api.TestimonialToProto(t))
	}
	return resp, nil
}
