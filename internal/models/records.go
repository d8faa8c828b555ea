package models

import (
	"fmt"
	"strings"
	"time"
)

// Kind tags a record type. The values double as notice kinds.
type Kind string

const (
	KindProject        Kind = "project"
	KindPair           Kind = "pair"
	KindVideo          Kind = "ba_video"
	KindGeneralProject Kind = "gproj"
	KindMedia          Kind = "gproj_media"
	KindTestimonial    Kind = "testimonial"
	KindMessage        Kind = "message"
	KindQuote          Kind = "quote"
	KindQuoteMedia     Kind = "quote_media"
)

// Table names.
const (
	TableProjects        = "before_after_projects"
	TablePairs           = "before_after_pairs"
	TableVideos          = "before_after_videos"
	TableGeneralProjects = "general_projects"
	TableMedia           = "general_project_media"
	TableTestimonials    = "testimonials"
	TableMessages        = "messages"
	TableQuotes          = "quotes"
	TableQuoteMedia      = "quote_media"
)

// Bucket names.
const (
	BucketProjects   = "ba"
	BucketVideos     = "ba-videos"
	BucketGeneral    = "gp-media"
	BucketQuoteMedia = "quote-media"
)

// Quote statuses.
const (
	QuoteStatusNew  = "new"
	QuoteStatusSent = "sent"
)

// Record is implemented by every typed row.
type Record interface {
	RecordKind() Kind
	RecordID() string
	Row() Row
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p Project) RecordKind() Kind { return KindProject }
func (p Project) RecordID() string { return p.ID }

func (p Project) Row() Row {
	return Row{
		"id":          p.ID,
		"title":       p.Title,
		"description": NullableString(p.Description),
		"featured":    p.Featured,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

func ProjectFromRow(r Row) (Project, error) {
	if err := requireID(KindProject, r); err != nil {
		return Project{}, err
	}
	return Project{
		ID:          r.ID(),
		Title:       r.String("title"),
		Description: r.String("description"),
		Featured:    r.Bool("featured"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}, nil
}

// Pair is one ordered before/after image pair of a Project.
type Pair struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	BeforeKey string    `json:"before_key"`
	AfterKey  string    `json:"after_key"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Pair) RecordKind() Kind { return KindPair }
func (p Pair) RecordID() string { return p.ID }

func (p Pair) Row() Row {
	return Row{
		"id":         p.ID,
		"project_id": p.ProjectID,
		"before_key": p.BeforeKey,
		"after_key":  p.AfterKey,
		"sort_order": p.SortOrder,
		"created_at": p.CreatedAt,
	}
}

func PairFromRow(r Row) (Pair, error) {
	if err := requireID(KindPair, r); err != nil {
		return Pair{}, err
	}
	return Pair{
		ID:        r.ID(),
		ProjectID: r.String("project_id"),
		BeforeKey: r.String("before_key"),
		AfterKey:  r.String("after_key"),
		SortOrder: r.Int("sort_order"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

// Video is a before/after video comparison. Its two files live inline on
// the row rather than in a child table.
type Video struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	BeforePath        string    `json:"before_path"`
	AfterPath         string    `json:"after_path"`
	SwitchTimeSeconds float64   `json:"switch_time_seconds"`
	PlaybackRate      float64   `json:"playback_rate"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (v Video) RecordKind() Kind { return KindVideo }
func (v Video) RecordID() string { return v.ID }

func (v Video) Row() Row {
	return Row{
		"id":                  v.ID,
		"title":               v.Title,
		"description":         NullableString(v.Description),
		"before_path":         v.BeforePath,
		"after_path":          v.AfterPath,
		"switch_time_seconds": v.SwitchTimeSeconds,
		"playback_rate":       v.PlaybackRate,
		"created_at":          v.CreatedAt,
		"updated_at":          v.UpdatedAt,
	}
}

func VideoFromRow(r Row) (Video, error) {
	if err := requireID(KindVideo, r); err != nil {
		return Video{}, err
	}
	rate := r.Float("playback_rate")
	if rate == 0 {
		rate = 1
	}
	return Video{
		ID:                r.ID(),
		Title:             r.String("title"),
		Description:       r.String("description"),
		BeforePath:        r.String("before_path"),
		AfterPath:         r.String("after_path"),
		SwitchTimeSeconds: r.Float("switch_time_seconds"),
		PlaybackRate:      rate,
		CreatedAt:         r.Time("created_at"),
		UpdatedAt:         r.Time("updated_at"),
	}, nil
}

type GeneralProject struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g GeneralProject) RecordKind() Kind { return KindGeneralProject }
func (g GeneralProject) RecordID() string { return g.ID }

func (g GeneralProject) Row() Row {
	return Row{
		"id":          g.ID,
		"title":       g.Title,
		"description": NullableString(g.Description),
		"featured":    g.Featured,
		"created_at":  g.CreatedAt,
		"updated_at":  g.UpdatedAt,
	}
}

func GeneralProjectFromRow(r Row) (GeneralProject, error) {
	if err := requireID(KindGeneralProject, r); err != nil {
		return GeneralProject{}, err
	}
	return GeneralProject{
		ID:          r.ID(),
		Title:       r.String("title"),
		Description: r.String("description"),
		Featured:    r.Bool("featured"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}, nil
}

// Media kinds.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaFile  = "file"
)

// Media is one image or video attached to a GeneralProject.
type Media struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Kind      string    `json:"kind"`
	Path      string    `json:"path"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (m Media) RecordKind() Kind { return KindMedia }
func (m Media) RecordID() string { return m.ID }

func (m Media) Row() Row {
	return Row{
		"id":         m.ID,
		"project_id": m.ProjectID,
		"kind":       m.Kind,
		"path":       m.Path,
		"sort_order": m.SortOrder,
		"created_at": m.CreatedAt,
	}
}

func MediaFromRow(r Row) (Media, error) {
	if err := requireID(KindMedia, r); err != nil {
		return Media{}, err
	}
	return Media{
		ID:        r.ID(),
		ProjectID: r.String("project_id"),
		Kind:      r.String("kind"),
		Path:      r.String("path"),
		SortOrder: r.Int("sort_order"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int64     `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func (t Testimonial) RecordKind() Kind { return KindTestimonial }
func (t Testimonial) RecordID() string { return t.ID }

func (t Testimonial) Row() Row {
	return Row{
		"id":         t.ID,
		"name":       t.Name,
		"text":       t.Text,
		"rating":     t.Rating,
		"approved":   t.Approved,
		"created_at": t.CreatedAt,
	}
}

func TestimonialFromRow(r Row) (Testimonial, error) {
	if err := requireID(KindTestimonial, r); err != nil {
		return Testimonial{}, err
	}
	return Testimonial{
		ID:        r.ID(),
		Name:      r.String("name"),
		Text:      r.String("text"),
		Rating:    r.Int("rating"),
		Approved:  r.Bool("approved"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (m Message) RecordKind() Kind { return KindMessage }
func (m Message) RecordID() string { return m.ID }

func (m Message) Row() Row {
	return Row{
		"id":         m.ID,
		"name":       m.Name,
		"email":      m.Email,
		"phone":      NullableString(m.Phone),
		"subject":    NullableString(m.Subject),
		"body":       m.Body,
		"read":       m.Read,
		"created_at": m.CreatedAt,
	}
}

func MessageFromRow(r Row) (Message, error) {
	if err := requireID(KindMessage, r); err != nil {
		return Message{}, err
	}
	return Message{
		ID:        r.ID(),
		Name:      r.String("name"),
		Email:     r.String("email"),
		Phone:     r.String("phone"),
		Subject:   r.String("subject"),
		Body:      r.String("body"),
		Read:      r.Bool("read"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

// Quote is a quote request submitted through the public intake form.
type Quote struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Service     string     `json:"service"`
	Description string     `json:"description"`
	ContactPref string     `json:"contact_pref"`
	Status      string     `json:"status"`
	QuoteSent   bool       `json:"quote_sent"`
	QuoteSentAt *time.Time `json:"quote_sent_at,omitempty"`
	Reviewed    bool       `json:"reviewed"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (q Quote) RecordKind() Kind { return KindQuote }
func (q Quote) RecordID() string { return q.ID }

func (q Quote) Row() Row {
	r := Row{
		"id":            q.ID,
		"name":          q.Name,
		"email":         q.Email,
		"phone":         NullableString(q.Phone),
		"address":       NullableString(q.Address),
		"city":          NullableString(q.City),
		"service":       q.Service,
		"description":   q.Description,
		"contact_pref":  q.ContactPref,
		"status":        q.Status,
		"quote_sent":    q.QuoteSent,
		"quote_sent_at": nil,
		"reviewed":      q.Reviewed,
		"created_at":    q.CreatedAt,
	}
	if q.QuoteSentAt != nil {
		r["quote_sent_at"] = *q.QuoteSentAt
	}
	return r
}

func QuoteFromRow(r Row) (Quote, error) {
	if err := requireID(KindQuote, r); err != nil {
		return Quote{}, err
	}
	status := r.String("status")
	if status == "" {
		status = QuoteStatusNew
	}
	return Quote{
		ID:          r.ID(),
		Name:        r.String("name"),
		Email:       r.String("email"),
		Phone:       r.String("phone"),
		Address:     r.String("address"),
		City:        r.String("city"),
		Service:     r.String("service"),
		Description: r.String("description"),
		ContactPref: r.String("contact_pref"),
		Status:      status,
		QuoteSent:   r.Bool("quote_sent"),
		QuoteSentAt: r.TimePtr("quote_sent_at"),
		Reviewed:    r.Bool("reviewed"),
		CreatedAt:   r.Time("created_at"),
	}, nil
}

// QuoteMedia is a file attached to a quote request. It lives in a private
// bucket and is only reachable through signed URLs.
type QuoteMedia struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Kind      string    `json:"kind"`
	Path      string    `json:"path"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (m QuoteMedia) RecordKind() Kind { return KindQuoteMedia }
func (m QuoteMedia) RecordID() string { return m.ID }

func (m QuoteMedia) Row() Row {
	return Row{
		"id":         m.ID,
		"quote_id":   m.QuoteID,
		"kind":       m.Kind,
		"path":       m.Path,
		"sort_order": m.SortOrder,
		"created_at": m.CreatedAt,
	}
}

func QuoteMediaFromRow(r Row) (QuoteMedia, error) {
	if err := requireID(KindQuoteMedia, r); err != nil {
		return QuoteMedia{}, err
	}
	return QuoteMedia{
		ID:        r.ID(),
		QuoteID:   r.String("quote_id"),
		Kind:      r.String("kind"),
		Path:      r.String("path"),
		SortOrder: r.Int("sort_order"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

// Decode maps a row of the given kind to its typed record.
func Decode(kind Kind, r Row) (Record, error) {
	switch kind {
	case KindProject:
		return ProjectFromRow(r)
	case KindPair:
		return PairFromRow(r)
	case KindVideo:
		return VideoFromRow(r)
	case KindGeneralProject:
		return GeneralProjectFromRow(r)
	case KindMedia:
		return MediaFromRow(r)
	case KindTestimonial:
		return TestimonialFromRow(r)
	case KindMessage:
		return MessageFromRow(r)
	case KindQuote:
		return QuoteFromRow(r)
	case KindQuoteMedia:
		return QuoteMediaFromRow(r)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

// KindOfTable returns the record kind stored in table.
func KindOfTable(table string) (Kind, bool) {
	k, ok := tableKinds[table]
	return k, ok
}

var tableKinds = map[string]Kind{
	TableProjects:        KindProject,
	TablePairs:           KindPair,
	TableVideos:          KindVideo,
	TableGeneralProjects: KindGeneralProject,
	TableMedia:           KindMedia,
	TableTestimonials:    KindTestimonial,
	TableMessages:        KindMessage,
	TableQuotes:          KindQuote,
	TableQuoteMedia:      KindQuoteMedia,
}

// MediaKindFor guesses the media kind from a MIME type.
func MediaKindFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return MediaImage
	case strings.HasPrefix(contentType, "video/"):
		return MediaVideo
	default:
		return MediaFile
	}
}

func requireID(kind Kind, r Row) error {
	if r.ID() == "" {
		return fmt.Errorf("%s row without id", kind)
	}
	return nil
}
