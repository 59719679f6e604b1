// Package media turns stored media locators into URLs a client can fetch.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-kratos/kratos/v2/log"
)

// Resolver maps a stored locator to a client URL. It never fails: a locator
// that cannot be resolved is returned unchanged.
type Resolver interface {
	Resolve(ctx context.Context, locator string) string
}

// Passthrough returns every locator unchanged.
type Passthrough struct{}

func (Passthrough) Resolve(_ context.Context, locator string) string { return locator }

// Presigner is the subset of *s3.PresignClient used here.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Resolver presigns bare object keys; absolute URLs pass through.
type S3Resolver struct {
	bucket    string
	ttl       time.Duration
	presigner Presigner
	log       *log.Helper
}

func NewS3Resolver(bucket string, ttl time.Duration, presigner Presigner, logger log.Logger) *S3Resolver {
	return &S3Resolver{
		bucket:    bucket,
		ttl:       ttl,
		presigner: presigner,
		log:       log.NewHelper(log.With(logger, "module", "media")),
	}
}

func (r *S3Resolver) Resolve(ctx context.Context, locator string) string {
	if locator == "" || isAbsoluteURL(locator) {
		return locator
	}
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimPrefix(locator, "/")),
	}, s3.WithPresignExpires(r.ttl))
	if err != nil {
		r.log.Warnf("presign %s: %v", locator, err)
		return locator
	}
	return req.URL
}

// New returns a Passthrough when bucket is empty, otherwise an S3Resolver
// using the default AWS credential chain.
func New(ctx context.Context, bucket string, ttl time.Duration, logger log.Logger) (Resolver, error) {
	if bucket == "" {
		return Passthrough{}, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Resolver(bucket, ttl, s3.NewPresignClient(s3.NewFromConfig(cfg)), logger), nil
}

func isAbsoluteURL(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}
