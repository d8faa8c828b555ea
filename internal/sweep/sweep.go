// Package sweep removes blobs no row refers to any more. Saves and deletes
// clean up after themselves on a best-effort basis; the sweep catches what
// they leak.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/robfig/cron/v3"
)

const (
	DefaultGrace    = 24 * time.Hour
	DefaultSchedule = "@every 6h"
	runTimeout      = 10 * time.Minute
)

// Ref names the columns of a table that hold keys of a bucket.
type Ref struct {
	Bucket  string
	Table   string
	Columns []string
}

// DefaultRefs lists every column holding a blob key.
func DefaultRefs() []Ref {
	return []Ref{
		{Bucket: models.BucketProjects, Table: models.TablePairs, Columns: []string{"before_key", "after_key"}},
		{Bucket: models.BucketVideos, Table: models.TableVideos, Columns: []string{"before_path", "after_path"}},
		{Bucket: models.BucketGeneral, Table: models.TableMedia, Columns: []string{"path"}},
		{Bucket: models.BucketQuoteMedia, Table: models.TableQuoteMedia, Columns: []string{"path"}},
	}
}

// Recorder counts removed objects. The metrics package implements it.
type Recorder interface {
	SweepRemovedObjects(bucket string, n int)
}

type Sweeper struct {
	gw       gateway.Gateway
	blobs    blob.Store
	log      logging.Logger
	refs     []Ref
	grace    time.Duration
	recorder Recorder
	now      func() time.Time
}

type Option func(*Sweeper)

func WithGrace(d time.Duration) Option { return func(s *Sweeper) { s.grace = d } }

func WithRefs(refs ...Ref) Option { return func(s *Sweeper) { s.refs = refs } }

func WithRecorder(r Recorder) Option { return func(s *Sweeper) { s.recorder = r } }

func WithClock(now func() time.Time) Option { return func(s *Sweeper) { s.now = now } }

func New(gw gateway.Gateway, blobs blob.Store, log logging.Logger, opts ...Option) *Sweeper {
	s := &Sweeper{
		gw:    gw,
		blobs: blobs,
		log:   log.With("module", "sweep"),
		refs:  DefaultRefs(),
		grace: DefaultGrace,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// BucketReport is the outcome of sweeping one bucket.
type BucketReport struct {
	Bucket     string
	Objects    int
	Referenced int
	Removed    []string
	Err        error
}

// Sweep removes unreferenced objects older than the grace period from
// every bucket. A bucket whose references cannot be read is skipped.
func (s *Sweeper) Sweep(ctx context.Context) []BucketReport {
	byBucket := map[string][]Ref{}
	for _, r := range s.refs {
		byBucket[r.Bucket] = append(byBucket[r.Bucket], r)
	}
	buckets := make([]string, 0, len(byBucket))
	for b := range byBucket {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	reports := make([]BucketReport, 0, len(buckets))
	for _, b := range buckets {
		rep := s.sweepBucket(ctx, b, byBucket[b])
		if rep.Err != nil {
			s.log.Warn(ctx, "sweep skipped bucket", "bucket", b, "error", rep.Err)
		} else if len(rep.Removed) > 0 {
			s.log.Info(ctx, "sweep removed orphans", "bucket", b, "count", len(rep.Removed), "keys", rep.Removed)
		}
		reports = append(reports, rep)
	}
	return reports
}

func (s *Sweeper) sweepBucket(ctx context.Context, bucket string, refs []Ref) BucketReport {
	rep := BucketReport{Bucket: bucket}

	used, err := s.referenced(ctx, refs)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Referenced = len(used)

	objs, err := s.blobs.List(ctx, bucket)
	if err != nil {
		rep.Err = fmt.Errorf("list %s: %w", bucket, err)
		return rep
	}
	rep.Objects = len(objs)

	cutoff := s.now().Add(-s.grace)
	for _, o := range objs {
		if used[o.Key] || o.LastModified.After(cutoff) {
			continue
		}
		rep.Removed = append(rep.Removed, o.Key)
	}
	if len(rep.Removed) == 0 {
		return rep
	}

	s.blobs.Remove(ctx, bucket, rep.Removed)
	if s.recorder != nil {
		s.recorder.SweepRemovedObjects(bucket, len(rep.Removed))
	}
	return rep
}

func (s *Sweeper) referenced(ctx context.Context, refs []Ref) (map[string]bool, error) {
	used := map[string]bool{}
	for _, r := range refs {
		rows, err := s.gw.List(ctx, r.Table, gateway.Query{})
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.Table, err)
		}
		for _, row := range rows {
			for _, c := range r.Columns {
				if k := row.String(c); k != "" {
					used[k] = true
				}
			}
		}
	}
	return used, nil
}

// Run implements cron.Job.
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	s.log.Info(ctx, "sweep started")
	removed := 0
	for _, r := range s.Sweep(ctx) {
		removed += len(r.Removed)
	}
	s.log.Info(ctx, "sweep completed", "removed", removed)
}

// Schedule registers s on c under spec, e.g. "@every 6h" or "0 3 * * *".
func (s *Sweeper) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddJob(spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s))
	if err != nil {
		return 0, fmt.Errorf("schedule sweep %q: %w", spec, err)
	}
	return id, nil
}
