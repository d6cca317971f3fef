// Package s3 uploads event and profile media to an S3-compatible bucket.
package s3

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Store is a blob store backed by S3. Credentials come from the default AWS
// provider chain.
type Store struct {
	uploader      *s3manager.Uploader
	client        *awss3.S3
	bucket        string
	publicBaseURL string
	publicRead    bool
	log           *slog.Logger
}

// New creates a Store for cfg.
func New(cfg config.BlobConfig, logger *slog.Logger) (*Store, error) {
	awsCfg := aws.NewConfig().
		WithRegion(cfg.Region).
		WithS3ForcePathStyle(cfg.PathStyle)
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint).
			WithDisableSSL(strings.HasPrefix(cfg.Endpoint, "http://"))
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("s3: new session: %w", err)
	}

	return &Store{
		uploader:      s3manager.NewUploader(sess),
		client:        awss3.New(sess),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		publicRead:    cfg.PublicRead,
		log:           logger.With("adapter", "s3"),
	}, nil
}

// Upload stores f under key and returns a URL the clients can download from.
// The URL is only readable anonymously if the bucket policy allows it or the
// store was configured with PublicRead.
func (s *Store) Upload(ctx context.Context, key string, f domain.File) (string, error) {
	in := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f.Body,
	}
	if f.ContentType != "" {
		in.ContentType = aws.String(f.ContentType)
	}
	if s.publicRead {
		in.ACL = aws.String(awss3.ObjectCannedACLPublicRead)
	}

	out, err := s.uploader.UploadWithContext(ctx, in)
	if err != nil {
		s.log.WarnContext(ctx, "upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", fmt.Errorf("s3: upload %s: %w", key, err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return out.Location, nil
}

// Ping checks the bucket exists and is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucketWithContext(ctx, &awss3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("s3: head bucket %s: %w", s.bucket, err)
	}
	return nil
}
