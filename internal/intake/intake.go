// Package intake accepts the public site's submissions: quote requests
// with optional media, contact messages and reviews.
package intake

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/google/uuid"
)

// Form names used for metrics and logs.
const (
	FormQuote       = "quote"
	FormMessage     = "message"
	FormTestimonial = "testimonial"
)

const (
	minDescription = 15
	defaultRating  = 5

	// Free text stays well below the size of a row change notification.
	maxShortText = 200
	maxLongText  = 5000

	DefaultMaxFiles     = 10
	DefaultMaxFileBytes = 50 << 20
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^[\d\-+\s().]{7,20}$`)
)

// Contact preferences.
var contactPrefs = map[string]bool{"email": true, "phone": true, "text": true}

// Recorder counts submissions per form and outcome. The metrics package
// implements it.
type Recorder interface {
	IntakeSubmitted(form string, err error)
}

type Service struct {
	gw    gateway.Gateway
	blobs blob.Store
	log   logging.Logger

	recorder     Recorder
	maxFiles     int
	maxFileBytes int
	now          func() time.Time
	newID        func() string
}

type Option func(*Service)

func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

func WithLimits(maxFiles, maxFileBytes int) Option {
	return func(s *Service) {
		if maxFiles > 0 {
			s.maxFiles = maxFiles
		}
		if maxFileBytes > 0 {
			s.maxFileBytes = maxFileBytes
		}
	}
}

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(gw gateway.Gateway, blobs blob.Store, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		gw:           gw,
		blobs:        blobs,
		log:          log.With("module", "intake"),
		maxFiles:     DefaultMaxFiles,
		maxFileBytes: DefaultMaxFileBytes,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// File is one uploaded attachment of a quote request.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type QuoteRequest struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	Service     string
	Description string
	ContactPref string
	Files       []File
}

func (r *QuoteRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.Service = strings.TrimSpace(r.Service)
	r.Description = strings.TrimSpace(r.Description)
	r.ContactPref = strings.ToLower(strings.TrimSpace(r.ContactPref))
	if r.ContactPref == "" {
		r.ContactPref = "email"
	}
}

func (s *Service) validateQuote(r QuoteRequest) error {
	verr := &common.ValidationError{}
	if r.Name == "" {
		verr.Add("name", "Name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		verr.Add("email", "Valid email is required")
	}
	if r.Phone != "" && !phonePattern.MatchString(r.Phone) {
		verr.Add("phone", "Invalid phone")
	}
	if r.Service == "" {
		verr.Add("service", "Please choose a service")
	}
	if utf8.RuneCountInString(r.Description) < minDescription {
		verr.Add("description", fmt.Sprintf("Please add at least %d characters", minDescription))
	}
	if !contactPrefs[r.ContactPref] {
		verr.Add("contact_pref", "must be email, phone or text")
	}
	checkLength(verr, "name", r.Name, maxShortText)
	checkLength(verr, "email", r.Email, maxShortText)
	checkLength(verr, "address", r.Address, maxShortText)
	checkLength(verr, "city", r.City, maxShortText)
	checkLength(verr, "service", r.Service, maxShortText)
	checkLength(verr, "description", r.Description, maxLongText)
	if len(r.Files) > s.maxFiles {
		verr.Add("files", fmt.Sprintf("at most %d files", s.maxFiles))
	}
	for i, f := range r.Files {
		field := fmt.Sprintf("files[%d]", i)
		switch {
		case len(f.Data) == 0:
			verr.Add(field, "file is empty")
		case len(f.Data) > s.maxFileBytes:
			verr.Add(field, "file is too large")
		}
	}
	return verr.OrNil()
}

// SubmitQuote validates r, uploads its files under quotes/<id>/ and stores
// the quote with its media rows in one transaction. When the rows cannot
// be written the uploaded files are removed again.
func (s *Service) SubmitQuote(ctx context.Context, r QuoteRequest) (quote models.Quote, err error) {
	defer func() { s.record(FormQuote, err) }()

	r.normalize()
	if err := s.validateQuote(r); err != nil {
		return models.Quote{}, err
	}

	id := s.newID()
	stamp := s.now().UnixMilli()

	uploaded := make([]string, 0, len(r.Files))
	media := make([]models.Row, 0, len(r.Files))
	for i, f := range r.Files {
		key := fmt.Sprintf("quotes/%s/%d_%d_%s", id, stamp, i, blob.CleanName(f.Name))
		if _, err := s.blobs.Upload(ctx, models.BucketQuoteMedia, key, f.Data, f.ContentType, false); err != nil {
			s.blobs.Remove(ctx, models.BucketQuoteMedia, uploaded)
			return models.Quote{}, fmt.Errorf("upload %s: %w", f.Name, err)
		}
		uploaded = append(uploaded, key)
		media = append(media, models.Row{
			"quote_id":   id,
			"kind":       models.MediaKindFor(f.ContentType),
			"path":       key,
			"sort_order": int64(i),
		})
	}

	row := models.Quote{
		ID:          id,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Service:     r.Service,
		Description: r.Description,
		ContactPref: r.ContactPref,
		Status:      models.QuoteStatusNew,
	}.Row()

	var stored models.Row
	err = gateway.Atomic(ctx, s.gw, func(ctx context.Context, g gateway.Gateway) error {
		out, err := g.Insert(ctx, models.TableQuotes, row)
		if err != nil {
			return err
		}
		for _, m := range media {
			if _, err := g.Insert(ctx, models.TableQuoteMedia, m); err != nil {
				return err
			}
		}
		stored = out
		return nil
	})
	if err != nil {
		s.blobs.Remove(ctx, models.BucketQuoteMedia, uploaded)
		return models.Quote{}, fmt.Errorf("store quote: %w", err)
	}

	s.log.Info(ctx, "quote received", "id", id, "service", r.Service, "files", len(uploaded))
	return models.QuoteFromRow(stored)
}

type MessageRequest struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
	// BotField is the hidden honeypot input. Humans leave it empty.
	BotField string
}

// SubmitMessage stores a contact message. A filled honeypot is accepted
// and dropped; the returned bool reports whether the message was stored.
func (s *Service) SubmitMessage(ctx context.Context, r MessageRequest) (stored bool, err error) {
	if strings.TrimSpace(r.BotField) != "" {
		s.log.Info(ctx, "honeypot message dropped")
		s.record(FormMessage, nil)
		return false, nil
	}
	defer func() { s.record(FormMessage, err) }()

	m := models.Message{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Subject: strings.TrimSpace(r.Subject),
		Body:    strings.TrimSpace(r.Body),
	}

	verr := &common.ValidationError{}
	if m.Name == "" {
		verr.Add("name", "Name is required")
	}
	if m.Email == "" {
		verr.Add("email", "Email is required")
	}
	if m.Body == "" {
		verr.Add("body", "Message is required")
	}
	checkLength(verr, "name", m.Name, maxShortText)
	checkLength(verr, "email", m.Email, maxShortText)
	checkLength(verr, "phone", m.Phone, maxShortText)
	checkLength(verr, "subject", m.Subject, maxShortText)
	checkLength(verr, "body", m.Body, maxLongText)
	if err := verr.OrNil(); err != nil {
		return false, err
	}

	row := m.Row()
	delete(row, "id")
	delete(row, "created_at")
	if _, err := s.gw.Insert(ctx, models.TableMessages, row); err != nil {
		return false, fmt.Errorf("store message: %w", err)
	}
	return true, nil
}

type TestimonialRequest struct {
	Name   string
	Text   string
	Rating int
}

// SubmitTestimonial stores a review awaiting approval. A zero rating means
// the default of five stars.
func (s *Service) SubmitTestimonial(ctx context.Context, r TestimonialRequest) (t models.Testimonial, err error) {
	defer func() { s.record(FormTestimonial, err) }()

	if r.Rating == 0 {
		r.Rating = defaultRating
	}
	t = models.Testimonial{
		Name:   strings.TrimSpace(r.Name),
		Text:   strings.TrimSpace(r.Text),
		Rating: int64(r.Rating),
	}

	verr := &common.ValidationError{}
	if t.Name == "" {
		verr.Add("name", "Name is required")
	}
	if t.Text == "" {
		verr.Add("text", "Review text is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		verr.Add("rating", "must be between 1 and 5")
	}
	checkLength(verr, "name", t.Name, maxShortText)
	checkLength(verr, "text", t.Text, maxLongText)
	if err := verr.OrNil(); err != nil {
		return models.Testimonial{}, err
	}

	row := t.Row()
	delete(row, "id")
	delete(row, "created_at")
	out, err := s.gw.Insert(ctx, models.TableTestimonials, row)
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("store testimonial: %w", err)
	}
	return models.TestimonialFromRow(out)
}

// ApprovedTestimonials lists approved reviews, newest first.
func (s *Service) ApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := s.gw.List(ctx, models.TableTestimonials, gateway.Query{
		Filters: []gateway.Filter{gateway.Eq("approved", true)},
		Orders:  []gateway.Order{gateway.Desc("created_at")},
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Testimonial, 0, len(rows))
	for _, r := range rows {
		t, err := models.TestimonialFromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func checkLength(verr *common.ValidationError, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		verr.Add(field, fmt.Sprintf("at most %d characters", max))
	}
}

func (s *Service) record(form string, err error) {
	if s.recorder != nil {
		s.recorder.IntakeSubmitted(form, err)
	}
}
