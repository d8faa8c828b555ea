package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

func (a *App) Notices(ctx context.Context, _ []string) error {
	cctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.client.Notices(cctx)
	if err != nil {
		return err
	}
	if len(resp.Notices) == 0 {
		fmt.Fprintln(a.out, "No notices")
		return nil
	}
	fmt.Fprintf(a.out, "%d unread\n", resp.Unread)
	for _, n := range resp.Notices {
		printNotice(a.out, n)
	}
	return nil
}

// Open marks a notice read and shows the entity it is about.
func (a *App) Open(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	n, err := a.client.SelectNotice(cctx, args[0])
	if err != nil {
		return err
	}
	printNotice(a.out, n)

	coll, ok := collectionForKind(n.Kind)
	if !ok || n.SubjectID == "" || n.Action == notify.ActionDelete {
		return nil
	}
	v, err := a.client.Get(cctx, coll, n.SubjectID)
	if err != nil {
		return err
	}
	printView(a.out, v)
	return nil
}

func (a *App) Ack(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	if args[0] == "all" {
		return a.client.MarkAllNoticesRead(cctx)
	}
	return a.client.MarkNoticeRead(cctx, args[0])
}

func (a *App) Clear(ctx context.Context, args []string) error {
	if err := need(args, 1); err != nil {
		return err
	}
	cctx, cancel := a.call(ctx)
	defer cancel()

	if args[0] == "all" {
		return a.client.DeleteAllNotices(cctx)
	}
	return a.client.DeleteNotice(cctx, args[0])
}

// startWatching prints notices as the server pushes them until sign-out.
func (a *App) startWatching(ctx context.Context) {
	wctx, cancel := context.WithCancel(ctx)

	ch, err := a.client.WatchNotices(wctx)
	if err != nil {
		cancel()
		printlnFn("Notice stream unavailable:", err)
		return
	}

	a.mu.Lock()
	if a.stopWatch != nil {
		a.stopWatch()
	}
	a.stopWatch = cancel
	a.mu.Unlock()

	go func() {
		for n := range ch {
			fmt.Fprintln(a.out)
			printNotice(a.out, n)
		}
	}()
}

func (a *App) stopWatching() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}
}

// collectionForKind maps a notice kind to the collection listing it.
func collectionForKind(kind string) (string, bool) {
	for _, s := range collection.All() {
		if string(s.Kind) == kind {
			return s.Name, true
		}
	}
	return "", false
}
