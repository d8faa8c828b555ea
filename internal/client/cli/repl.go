package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// printFn writes a prompt without a trailing newline.
var printFn = fmt.Print

var errUsage = errors.New("usage")

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isSignedIn() bool

	SignIn(ctx context.Context, args []string) error
	SignOut(ctx context.Context, args []string) error

	Collections(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Revert(ctx context.Context, args []string) error
	Attach(ctx context.Context, args []string) error
	Detach(ctx context.Context, args []string) error
	Discard(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	RemoveChild(ctx context.Context, args []string) error
	URL(ctx context.Context, args []string) error
	Fetch(ctx context.Context, args []string) error

	Quotes(ctx context.Context, args []string) error
	Sent(ctx context.Context, args []string) error
	Reviewed(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error

	Notices(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Ack(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
}

type command struct {
	usage string
	run   func(e execIface, ctx context.Context, args []string) error
}

var signedInCommands = map[string]command{
	"collections": {"collections", execIface.Collections},
	"list":        {"list <collection>", execIface.List},
	"l":           {"l <collection>", execIface.List},
	"show":        {"show <collection> <id>", execIface.Show},
	"create":      {"create <collection> [slot=path ...]", execIface.Create},
	"edit":        {"edit <collection> <id>", execIface.Edit},
	"revert":      {"revert <collection> <id> <column>", execIface.Revert},
	"attach":      {"attach <collection> <id> <slot> <path>", execIface.Attach},
	"detach":      {"detach <collection> <id> <slot>", execIface.Detach},
	"discard":     {"discard <collection> <id>", execIface.Discard},
	"save":        {"save <collection> <id>", execIface.Save},
	"delete":      {"delete <collection> <id>", execIface.Delete},
	"rmchild":     {"rmchild <collection> <id> <child id>", execIface.RemoveChild},
	"url":         {"url <collection> <key>", execIface.URL},
	"fetch":       {"fetch <collection> <key>", execIface.Fetch},
	"quotes":      {"quotes all|new|sent", execIface.Quotes},
	"sent":        {"sent <quote id> [yes|no]", execIface.Sent},
	"reviewed":    {"reviewed <quote id>", execIface.Reviewed},
	"read":        {"read <message id>", execIface.Read},
	"approve":     {"approve <testimonial id>", execIface.Approve},
	"notices":     {"notices", execIface.Notices},
	"open":        {"open <notice id>", execIface.Open},
	"ack":         {"ack <notice id>|all", execIface.Ack},
	"clear":       {"clear <notice id>|all", execIface.Clear},
	"signout":     {"signout", execIface.SignOut},
}

func help(signedIn bool) string {
	if !signedIn {
		return "Available commands: signin, help, exit"
	}
	return "Available commands: collections, (l)ist, show, create, edit, revert, attach, detach, " +
		"discard, save, delete, rmchild, url, fetch, quotes, sent, reviewed, read, approve, " +
		"notices, open, ack, clear, signout, exit"
}

// runREPL starts the read–eval–print loop of the console.
//
// It reads a line from reader, parses the first token as the command and
// dispatches the remaining tokens to methods on a. The loop exits on EOF or
// when the user types "exit" or "quit". Command errors are printed and the
// loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("lk %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(help(a.isSignedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "signin", "login":
			report(a.SignIn(ctx, args), "")
			continue
		}

		c, ok := signedInCommands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isSignedIn() {
			printlnFn("Sign in first")
			continue
		}
		report(c.run(a, ctx, args), c.usage)
	}
}

func report(err error, usage string) {
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		printlnFn("Usage:", usage)
	default:
		printlnFn("Error:", err)
	}
}

func need(args []string, n int) error {
	if len(args) < n {
		return errUsage
	}
	return nil
}
