// Package blob is the blob store gateway: upload, best-effort removal and
// URL resolution for objects in named buckets. Callers choose keys; NewKey
// builds collision-resistant ones.
package blob

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSignedTTL is the lifetime of signed URLs when none is requested.
const DefaultSignedTTL = 15 * time.Minute

// UploadReuseWindow is how long a retried save may point rows at an object
// an earlier attempt uploaded. Orphan sweeps must wait longer than this.
const UploadReuseWindow = 30 * time.Minute

// Store is implemented by S3Store and MemoryStore.
type Store interface {
	// Upload stores data under key. With overwrite false it fails with
	// common.ErrorAlreadyExists when the key is taken.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error)
	// Remove deletes keys. Failures are logged and counted, never returned.
	Remove(ctx context.Context, bucket string, keys []string)
	// URLFor resolves a public URL, or a signed one when opts.Signed is set.
	URLFor(ctx context.Context, bucket, key string, opts URLOptions) (string, error)
	// List returns every object in bucket.
	List(ctx context.Context, bucket string) ([]Object, error)
}

type URLOptions struct {
	Signed bool
	TTL    time.Duration
}

func (o URLOptions) ttl() time.Duration {
	if o.TTL <= 0 {
		return DefaultSignedTTL
	}
	return o.TTL
}

type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// FailureRecorder counts blob removal failures per bucket.
type FailureRecorder interface {
	BlobRemoveFailed(bucket string, n int)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// CleanName reduces a client file name to a safe key segment.
func CleanName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_.")
	if name == "" {
		return "file"
	}
	if len(name) > 80 {
		name = name[len(name)-80:]
	}
	return name
}

var (
	newUUID = uuid.NewString
	nowFn   = time.Now
)

// NewKey returns "<prefix>/<uuid>_<unix seconds>_<clean name>".
func NewKey(prefix, filename string) string {
	name := fmt.Sprintf("%s_%d_%s", newUUID(), nowFn().Unix(), CleanName(filename))
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
