package client

import (
	"context"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

// Client is the admin console's view of the server.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*api.SignInResponse, error)
	SignOut(ctx context.Context) error
	SignedIn() bool

	List(ctx context.Context, coll string) (*api.ListEntitiesResponse, error)
	Get(ctx context.Context, coll, id string) (collection.View, error)
	Create(ctx context.Context, coll string, fields models.Row, files []api.File) (collection.View, error)
	Edit(ctx context.Context, coll, id string, fields models.Row, revert []string) (collection.View, error)
	Stage(ctx context.Context, coll, id string, f api.File) (*api.StageAttachmentResponse, error)
	Unstage(ctx context.Context, coll, id, slot string) (collection.View, error)
	Discard(ctx context.Context, coll, id string) (collection.View, error)
	Save(ctx context.Context, coll, id string) (collection.View, error)
	Delete(ctx context.Context, coll, id string) error
	RemoveChild(ctx context.Context, coll, id, childID string) (collection.View, error)
	ResolveURL(ctx context.Context, coll, key string) (string, error)

	SetQuoteFilter(ctx context.Context, tab string) ([]collection.View, error)
	MarkQuoteSent(ctx context.Context, id string, sent bool) (collection.View, error)
	ToggleQuoteReviewed(ctx context.Context, id string) (collection.View, error)
	MarkMessageRead(ctx context.Context, id string) (collection.View, error)
	ApproveTestimonial(ctx context.Context, id string) (collection.View, error)

	Notices(ctx context.Context) (*api.ListNoticesResponse, error)
	MarkNoticeRead(ctx context.Context, id string) error
	MarkAllNoticesRead(ctx context.Context) error
	SelectNotice(ctx context.Context, id string) (notify.Notice, error)
	DeleteNotice(ctx context.Context, id string) error
	DeleteAllNotices(ctx context.Context) error
	WatchNotices(ctx context.Context) (<-chan notify.Notice, error)

	Close() error
}
