// Package grpc serves AdminService: the admin console operations behind a
// session token and the public site's intake forms.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/console"
	"github.com/dmitrijs2005/landkeeper/internal/intake"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"github.com/dmitrijs2005/landkeeper/internal/server/auth"
	"google.golang.org/grpc"
)

// Authenticator signs the admin in and verifies session tokens.
// *auth.Service implements it.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	Verify(token string) (*auth.Claims, error)
}

// Sessions hands out per-session workspaces. *console.Manager implements
// it.
type Sessions interface {
	Acquire(ctx context.Context, sessionID, email string, expiresAt time.Time) (*console.Workspace, error)
	SignOut(sessionID string, expiresAt time.Time)
}

// Intake accepts public submissions. *intake.Service implements it.
type Intake interface {
	SubmitQuote(ctx context.Context, r intake.QuoteRequest) (models.Quote, error)
	SubmitMessage(ctx context.Context, r intake.MessageRequest) (bool, error)
	SubmitTestimonial(ctx context.Context, r intake.TestimonialRequest) (models.Testimonial, error)
	ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

type GRPCServer struct {
	pb.UnimplementedAdminServiceServer
	address    string
	auth       Authenticator
	sessions   Sessions
	intake     Intake
	logger     logging.Logger
	now        func() time.Time
	maxMsgSize int
}

var _ pb.AdminServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, authn Authenticator, sessions Sessions, in Intake) *GRPCServer {
	return &GRPCServer{
		address:    address,
		logger:     l.With("module", "grpc_server"),
		auth:       authn,
		sessions:   sessions,
		intake:     in,
		now:        time.Now,
		maxMsgSize: api.DefaultMessageLimit,
	}
}

// WithMessageLimit sets the largest message the server receives or sends.
// It has to fit a full intake submission.
func (s *GRPCServer) WithMessageLimit(n int) *GRPCServer {
	if n > 0 {
		s.maxMsgSize = n
	}
	return s
}

// NewServer builds the grpc.Server with AdminService and its interceptors
// registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(s.maxMsgSize),
		grpc.MaxSendMsgSize(s.maxMsgSize),
	}, opts...)
	opts = append(opts,
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	srv := grpc.NewServer(opts...)
	pb.RegisterAdminServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
