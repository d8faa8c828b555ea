// Package api converts between the AdminService wire messages in
// internal/proto and the domain types the server and the console client
// work with.
package api

import (
	"math"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/intake"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
)

type SignInResponse struct {
	AccessToken string
	SessionID   string
	ExpiresAt   time.Time
}

// File carries a local file picked by the admin or a site visitor.
type File struct {
	Slot        string
	Name        string
	ContentType string
	Data        []byte
}

type ListEntitiesResponse struct {
	Entities []collection.View
	// Focus is the entity a selected notice asked this list to reveal.
	Focus string
}

type StageAttachmentResponse struct {
	PreviewID string
	Entity    collection.View
}

type ListNoticesResponse struct {
	Notices []notify.Notice
	Unread  int
}

// PublicMethods are reachable without an access token.
var PublicMethods = map[string]bool{
	pb.AdminService_SignIn_FullMethodName:            true,
	pb.AdminService_SubmitQuote_FullMethodName:       true,
	pb.AdminService_SubmitMessage_FullMethodName:     true,
	pb.AdminService_SubmitTestimonial_FullMethodName: true,
	pb.AdminService_ListTestimonials_FullMethodName:  true,
}

// MessageOverhead is the room left for everything in a request besides
// file bytes.
const MessageOverhead = 1 << 20

// MessageLimit is the largest gRPC message either side must accept when a
// request carries up to files attachments of fileBytes each.
func MessageLimit(files, fileBytes int) int {
	if files < 1 {
		files = 1
	}
	n := int64(files)*int64(fileBytes) + MessageOverhead
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// DefaultMessageLimit fits a submission at the default intake limits.
var DefaultMessageLimit = MessageLimit(intake.DefaultMaxFiles, intake.DefaultMaxFileBytes)
