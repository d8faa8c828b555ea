package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "collection loaded", "collection", "projects")
	log.Info(ctx, "entity saved", "id", "p1")
	log.Warn(ctx, "blob cleanup failed", "bucket", "ba")
	log.Error(ctx, "call failed", "code", 13)

	out := buf.String()
	for _, s := range []string{
		"level=DEBUG", `msg="collection loaded"`, "collection=projects",
		"level=INFO", `msg="entity saved"`, "id=p1",
		"level=WARN", "bucket=ba",
		"level=ERROR", "code=13",
	} {
		assert.Contains(t, out, s)
	}
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelWarn)

	log.Info(context.Background(), "quiet")
	require.Empty(t, buf.String())

	log.Warn(context.Background(), "loud")
	require.Contains(t, buf.String(), "msg=loud")
}

func TestSlogLogger_WithAndContextFields(t *testing.T) {
	log, buf := newTextLogger(t, slog.LevelDebug)

	ctx := ContextWith(context.Background(), "method", "/landkeeper.admin.AdminService/SaveEntity")
	ctx = ContextWith(ctx, "session", "s1")
	log.With("module", "grpc").Info(ctx, "call", "code", "OK")

	out := buf.String()
	for _, s := range []string{"module=grpc", "method=/landkeeper.admin.AdminService/SaveEntity", "session=s1", "code=OK"} {
		assert.Contains(t, out, s)
	}
}

func TestContextWith(t *testing.T) {
	base := context.Background()
	require.Equal(t, base, ContextWith(base))
	require.Nil(t, fieldsFrom(base))

	parent := ContextWith(base, "a", 1)
	child := ContextWith(parent, "b", 2)
	require.Equal(t, []any{"a", 1}, fieldsFrom(parent), "parent is not modified")
	require.Equal(t, []any{"a", 1, "b", 2}, fieldsFrom(child))
	require.Equal(t, []any{"a", 1, "k", "v"}, withContextFields(parent, []any{"k", "v"}))
}
