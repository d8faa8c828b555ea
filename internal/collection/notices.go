package collection

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

func (c *Controller) label() string {
	if c.schema.Label != "" {
		return c.schema.Label
	}
	return c.schema.Name
}

func titleOf(row models.Row) string {
	for _, col := range []string{"title", "name", "subject"} {
		if s := row.String(col); s != "" {
			return s
		}
	}
	return ""
}

func (c *Controller) succeeded(id, action, title, body string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Push(notify.Notice{
		Level:     notify.LevelSuccess,
		Kind:      string(c.schema.Kind),
		Action:    action,
		SubjectID: id,
		Title:     title,
		Body:      body,
	})
}

// failed logs err and raises one error notice carrying its human-readable
// message.
func (c *Controller) failed(ctx context.Context, id, title string, err error) {
	c.log.Warn(ctx, title, "id", id, "error", err)
	if c.notifier == nil {
		return
	}
	c.notifier.Push(notify.Notice{
		Level:     notify.LevelError,
		Kind:      string(c.schema.Kind),
		Action:    notify.ActionFailed,
		SubjectID: id,
		Title:     title,
		Body:      Message(err),
	})
}

// Message renders err for the admin: the gateway's message when there is
// one, the step that failed and the error text otherwise.
func Message(err error) string {
	var gerr *common.GatewayError
	var serr *StepError
	switch {
	case errors.As(err, &serr) && errors.As(err, &gerr):
		return serr.Step + ": " + gerr.Message
	case errors.As(err, &gerr):
		return gerr.Message
	case errors.As(err, &serr):
		return serr.Step + ": " + serr.Err.Error()
	default:
		return err.Error()
	}
}

func (c *Controller) recordSave(err error) {
	if c.recorder != nil {
		c.recorder.SaveFinished(c.schema.Name, err)
	}
}

func (c *Controller) recordDelete(err error) {
	if c.recorder != nil {
		c.recorder.DeleteFinished(c.schema.Name, err)
	}
}
