package notify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/models"
)

// BellTables are the tables whose changes reach the bell.
var BellTables = []string{
	models.TableMessages,
	models.TableProjects,
	models.TableTestimonials,
	models.TableVideos,
	models.TableGeneralProjects,
	models.TableMedia,
	models.TableQuotes,
}

// Observe subscribes the router to every bell table and returns a function
// that cancels all subscriptions.
func (r *Router) Observe(sub feed.Subscriber) (stop func()) {
	handle := func(ev feed.Event) { r.HandleEvent(ev) }

	unsubs := make([]func(), 0, len(BellTables))
	for _, table := range BellTables {
		unsubs = append(unsubs, sub.Subscribe(table, feed.Handlers{
			OnInsert: handle,
			OnUpdate: handle,
			OnDelete: handle,
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// HandleEvent maps one row event to a notice, if the event deserves one.
func (r *Router) HandleEvent(ev feed.Event) {
	if ev.Table == models.TableMessages && ev.Op == feed.OpUpdate {
		if ev.New.Bool("read") {
			r.MarkSubjectRead(string(models.KindMessage), ev.ID())
		}
		return
	}

	n, ok := NoticeFor(ev)
	if ok {
		r.Push(n)
	}
}

// NoticeFor builds the bell notice for ev. It reports false for events the
// bell ignores.
func NoticeFor(ev feed.Event) (Notice, bool) {
	row := ev.Row()
	if row == nil {
		return Notice{}, false
	}
	kind, ok := models.KindOfTable(ev.Table)
	if !ok {
		return Notice{}, false
	}

	n := Notice{Kind: string(kind), Action: actionFor(ev.Op), SubjectID: row.ID(), Level: LevelInfo}
	if ev.Op == feed.OpDelete {
		n.Level = LevelSuccess
	}

	switch kind {
	case models.KindMessage:
		from := firstNonEmpty(row.String("name"), row.String("email"), "Visitor")
		switch ev.Op {
		case feed.OpInsert:
			n.Title = "New message from " + from
		case feed.OpDelete:
			n.Title = "Message deleted (" + from + ")"
		default:
			return Notice{}, false
		}
		n.Body = Snip(row.String("body"), 90)
		if s := row.String("subject"); s != "" {
			n.Body = s + " - " + n.Body
		}

	case models.KindProject:
		n.Title = pick(ev.Op, "New Before & After project created", "Project updated", "Project deleted")
		n.Body = firstNonEmpty(row.String("title"), "Untitled project")

	case models.KindTestimonial:
		name := firstNonEmpty(row.String("name"), "Anonymous")
		switch ev.Op {
		case feed.OpInsert:
			n.Title = "New review submitted"
			n.Body = name + " - " + Snip(row.String("text"), 60)
		case feed.OpUpdate:
			n.Level = LevelSuccess
			n.Title = "Review updated"
			if row.Bool("approved") {
				n.Title = "Review approved"
			}
			n.Body = name
		default:
			n.Title = "Review deleted"
			n.Body = name
		}

	case models.KindVideo:
		n.Title = pick(ev.Op, "Before/After video created", "Before/After video updated", "Before/After video deleted")
		n.Body = firstNonEmpty(row.String("title"), "Untitled")

	case models.KindGeneralProject:
		n.Title = pick(ev.Op, "General project created", "General project updated", "General project deleted")
		n.Body = firstNonEmpty(row.String("title"), "Untitled")

	case models.KindMedia:
		n.Title = pick(ev.Op, "Project media added", "Project media updated", "Project media deleted")
		n.Body = firstNonEmpty(strings.ToUpper(row.String("kind")), "Media")

	case models.KindQuote:
		switch ev.Op {
		case feed.OpInsert:
			n.Title = "New quote from " + firstNonEmpty(row.String("name"), row.String("email"), "Client")
			n.Body = fmt.Sprintf("%s - %s", row.String("service"), firstNonEmpty(row.String("city"), "Unknown city"))
		case feed.OpUpdate:
			if ev.Old != nil && ev.Old.Has("quote_sent") && ev.Old.Bool("quote_sent") == row.Bool("quote_sent") {
				return Notice{}, false
			}
			n.Level = LevelSuccess
			n.Title = "Quote moved back to New"
			if row.Bool("quote_sent") {
				n.Title = "Quote marked as sent"
			}
			n.Body = row.String("name") + " - " + row.String("service")
		default:
			n.Title = "Quote deleted"
			n.Body = firstNonEmpty(row.String("name"), "Client") + " - " + row.String("service")
		}

	default:
		return Notice{}, false
	}
	return n, true
}

func actionFor(op feed.Op) string {
	switch op {
	case feed.OpInsert:
		return ActionInsert
	case feed.OpDelete:
		return ActionDelete
	default:
		return ActionUpdate
	}
}

func pick(op feed.Op, insert, update, del string) string {
	switch op {
	case feed.OpInsert:
		return insert
	case feed.OpDelete:
		return del
	default:
		return update
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Snip truncates s to n runes, marking the cut with an ellipsis.
func Snip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
