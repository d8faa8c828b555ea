package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/models"
)

func checkCollection(name string) error {
	if _, ok := collection.ByName(name); !ok {
		return fmt.Errorf("unknown collection %q; try 'collections'", name)
	}
	return nil
}

// Collections prints every collection with its attachment slots.
func (a *App) Collections(_ context.Context, _ []string) error {
	for _, s := range collection.All() {
		slots := append([]string(nil), s.InlineFiles...)
		if s.Child != nil {
			for _, col := range s.Child.FileColumns {
				slots = append(slots, "new-<n>/"+col, "<child id>/"+col)
			}
		}
		line := s.Name
		if len(slots) > 0 {
			line += "  slots: " + strings.Join(slots, ", ")
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) List(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	if err := checkCollection(args[0]); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.client.List(cctx, args[0])
	if err != nil {
		return err
	}
	printViews(a.out, resp.Entities, resp.Focus)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	v, err := a.client.Get(cctx, args[0], args[1])
	if err != nil {
		return err
	}
	printView(a.out, v)
	return nil
}

// Create prompts for the new entity's fields; files are given as
// slot=path arguments and uploaded with the insert.
func (a *App) Create(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	if err := checkCollection(args[0]); err != nil {
		return err
	}

	var files []api.File
	for _, arg := range args[1:] {
		slot, path, ok := strings.Cut(arg, "=")
		if !ok || slot == "" || path == "" {
			return fmt.Errorf("expected slot=path, got %q", arg)
		}
		f, err := loadFile(slot, path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	fields, err := GetFields(a.reader, "Fields of the new "+args[0]+" entry", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()

	v, err := a.client.Create(cctx, args[0], fields, files)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", v.ID)
	return nil
}

// Edit stages field changes; nothing is persisted until save.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	fields, err := GetFields(a.reader, "Changed fields", a.out)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.Edit(ctx, args[0], args[1], fields, nil)
	})
}

func (a *App) Revert(ctx context.Context, args []string) error {
	if err := need(args, 3); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.Edit(ctx, args[0], args[1], nil, args[2:])
	})
}

func (a *App) Attach(ctx context.Context, args []string) error {
	if err := need(args, 4); err != nil {
		return err
	}
	f, err := loadFile(args[2], args[3])
	if err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.client.Stage(cctx, args[0], args[1], f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Staged %s as %s (preview %s)\n", f.Name, f.Slot, resp.PreviewID)
	return nil
}

func (a *App) Detach(ctx context.Context, args []string) error {
	if err := need(args, 3); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.Unstage(ctx, args[0], args[1], args[2])
	})
}

func (a *App) Discard(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.Discard(ctx, args[0], args[1])
	})
}

func (a *App) Save(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.Save(ctx, args[0], args[1])
	})
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	ok, err := a.confirm(fmt.Sprintf("Delete %s %s and its files?", args[0], args[1]))
	if err != nil || !ok {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()

	if err := a.client.Delete(cctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) RemoveChild(ctx context.Context, args []string) error {
	if err := need(args, 3); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.RemoveChild(ctx, args[0], args[1], args[2])
	})
}

func (a *App) URL(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	u, err := a.client.ResolveURL(cctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, u)
	return nil
}

func (a *App) Quotes(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	views, err := a.client.SetQuoteFilter(cctx, args[0])
	if err != nil {
		return err
	}
	printViews(a.out, views, "")
	return nil
}

func (a *App) Sent(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	sent := true
	if len(args) > 1 {
		switch args[1] {
		case "yes", "y", "true":
		case "no", "n", "false":
			sent = false
		default:
			return errUsage
		}
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.MarkQuoteSent(ctx, args[0], sent)
	})
}

func (a *App) Reviewed(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.ToggleQuoteReviewed(ctx, args[0])
	})
}

func (a *App) Read(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.MarkMessageRead(ctx, args[0])
	})
}

func (a *App) Approve(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	return a.showEntity(ctx, func(ctx context.Context) (collection.View, error) {
		return a.client.ApproveTestimonial(ctx, args[0])
	})
}

func (a *App) showEntity(ctx context.Context, fn func(ctx context.Context) (collection.View, error)) error {
	cctx, cancel := a.call(ctx)
	defer cancel()

	v, err := fn(cctx)
	if err != nil {
		return err
	}
	printView(a.out, v)
	return nil
}

func (a *App) confirm(prompt string) (bool, error) {
	answer, err := getSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// title picks the column that best names an entity in listings.
func title(fields models.Row) string {
	for _, col := range []string{"title", "name", "subject", "email"} {
		if s := fields.String(col); s != "" {
			return s
		}
	}
	return ""
}
