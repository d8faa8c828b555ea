package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
)

// maxDeleteBatch is the DeleteObjects key limit.
const maxDeleteBatch = 1000

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Config describes an S3-compatible backend. PublicBaseURL is the prefix
// public objects are served from, e.g. "https://cdn.example.com/storage".
// Timeout bounds each store call; zero leaves calls bounded by the caller only.
type S3Config struct {
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string
	PublicBaseURL string
	UsePathStyle  bool
	Timeout       time.Duration
}

type S3Store struct {
	client     s3API
	presign    presignAPI
	publicBase string
	timeout    time.Duration
	log        logging.Logger
	failures   FailureRecorder
}

func NewS3Store(ctx context.Context, cfg S3Config, log logging.Logger, failures FailureRecorder) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	base := cfg.PublicBaseURL
	if base == "" {
		base = cfg.Endpoint
	}
	return &S3Store{
		client:     client,
		presign:    s3.NewPresignClient(client),
		publicBase: strings.TrimRight(base, "/"),
		timeout:    cfg.Timeout,
		log:        log,
		failures:   failures,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if !overwrite {
		in.IfNoneMatch = aws.String("*")
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()
	if _, err := s.client.PutObject(ctx, in); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "PreconditionFailed", "ConditionalRequestConflict":
				return "", &common.GatewayError{Op: "upload", Target: bucket, Message: "object already exists: " + key, Err: common.ErrorAlreadyExists}
			}
		}
		return "", s.wrap(ctx, "upload", bucket, err)
	}
	return key, nil
}

func (s *S3Store) Remove(ctx context.Context, bucket string, keys []string) {
	for start := 0; start < len(keys); start += maxDeleteBatch {
		end := min(start+maxDeleteBatch, len(keys))
		batch := keys[start:end]

		ids := make([]types.ObjectIdentifier, len(batch))
		for i, k := range batch {
			ids[i] = types.ObjectIdentifier{Key: aws.String(k)}
		}

		bctx, cancel := s.bound(ctx)
		out, err := s.client.DeleteObjects(bctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		cancel()
		if err != nil {
			err = s.wrap(bctx, "remove", bucket, err)
			s.log.Warn(ctx, "blob cleanup failed", "bucket", bucket, "keys", batch, "error", err)
			s.recordFailures(bucket, len(batch))
			continue
		}
		for _, e := range out.Errors {
			s.log.Warn(ctx, "blob cleanup failed", "bucket", bucket, "key", aws.ToString(e.Key),
				"code", aws.ToString(e.Code), "error", aws.ToString(e.Message))
		}
		s.recordFailures(bucket, len(out.Errors))
	}
}

func (s *S3Store) URLFor(ctx context.Context, bucket, key string, opts URLOptions) (string, error) {
	if !opts.Signed {
		return publicURL(s.publicBase, bucket, key), nil
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(opts.ttl()))
	if err != nil {
		return "", s.wrap(ctx, "sign", bucket, err)
	}
	return req.URL, nil
}

func (s *S3Store) List(ctx context.Context, bucket string) ([]Object, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var out []Object
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{Bucket: aws.String(bucket)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, s.wrap(ctx, "list", bucket, err)
		}
		for _, o := range page.Contents {
			out = append(out, Object{
				Key:          aws.ToString(o.Key),
				Size:         aws.ToInt64(o.Size),
				LastModified: aws.ToTime(o.LastModified),
			})
		}
	}
	return out, nil
}

func (s *S3Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *S3Store) wrap(ctx context.Context, op, bucket string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &common.GatewayError{Op: op, Target: bucket, Message: "request timed out", Err: err}
	}
	return common.NewGatewayError(op, bucket, err)
}

func (s *S3Store) recordFailures(bucket string, n int) {
	if n > 0 && s.failures != nil {
		s.failures.BlobRemoveFailed(bucket, n)
	}
}

func publicURL(base, bucket, key string) string {
	segs := strings.Split(key, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segs, "/")
}
