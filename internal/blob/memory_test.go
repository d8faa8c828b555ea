package blob

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_UploadRemoveList(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.SetClock(func() time.Time { return at })

	_, err := m.Upload(ctx, "ba", "b.jpg", []byte("2"), "image/jpeg", false)
	require.NoError(t, err)
	_, err = m.Upload(ctx, "ba", "a.jpg", []byte("1"), "image/jpeg", false)
	require.NoError(t, err)

	_, err = m.Upload(ctx, "ba", "a.jpg", []byte("x"), "image/jpeg", false)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	_, err = m.Upload(ctx, "ba", "a.jpg", []byte("3"), "image/jpeg", true)
	require.NoError(t, err)

	data, ok := m.Get("ba", "a.jpg")
	require.True(t, ok)
	require.Equal(t, "3", string(data))

	objs, err := m.List(ctx, "ba")
	require.NoError(t, err)
	require.Equal(t, []Object{{Key: "a.jpg", Size: 1, LastModified: at}, {Key: "b.jpg", Size: 1, LastModified: at}}, objs)

	m.Remove(ctx, "ba", []string{"a.jpg", "missing"})
	m.Remove(ctx, "nobucket", []string{"x"})
	require.Equal(t, []string{"b.jpg"}, m.Keys("ba"))
}

func TestMemoryStore_URLFor(t *testing.T) {
	m := NewMemoryStore()
	m.SetClock(func() time.Time { return time.Unix(1000, 0) })

	u, err := m.URLFor(context.Background(), "ba", "p/a b.jpg", URLOptions{})
	require.NoError(t, err)
	require.Equal(t, "memory://ba/p/a%20b.jpg", u)

	u, err = m.URLFor(context.Background(), "quote-media", "q/x.jpg", URLOptions{Signed: true})
	require.NoError(t, err)
	require.Equal(t, "memory://quote-media/q/x.jpg?expires=1900", u)
}

func TestNewKey(t *testing.T) {
	origUUID, origNow := newUUID, nowFn
	t.Cleanup(func() { newUUID, nowFn = origUUID, origNow })
	newUUID = func() string { return "0b6f" }
	nowFn = func() time.Time { return time.Unix(1700000000, 0) }

	require.Equal(t, "projects/p1/0b6f_1700000000_My_Yard_1_.jpg", NewKey("/projects/p1/", "C:\\pics\\My Yard (1).jpg"))
	require.Equal(t, "0b6f_1700000000_file", NewKey("", "..."))
}

func TestNewKey_Unique(t *testing.T) {
	a := NewKey("x", "a.jpg")
	b := NewKey("x", "a.jpg")
	require.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "x/"))
}

func TestCleanName_Truncates(t *testing.T) {
	name := CleanName(strings.Repeat("a", 100) + ".jpg")
	require.Len(t, name, 80)
	require.True(t, strings.HasSuffix(name, ".jpg"))
}
