package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/campdesk/slip-ingest/internal/common"
)

// S3Uploader talks to any S3-compatible bucket (Supabase storage, MinIO, AWS)
// through a path-style endpoint.
type S3Uploader struct {
	client   *s3.S3
	endpoint string
	bucket   string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewS3Uploader(cfg common.StorageConfig, logger *slog.Logger) (*S3Uploader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	awsCfg := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, common.WrapError(err, "create storage session")
	}
	return &S3Uploader{
		client:   s3.New(sess),
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		bucket:   cfg.Bucket,
		timeout:  cfg.Timeout,
		logger:   logger,
	}, nil
}

// Upload writes one object and returns its public URL. Upsert is disabled:
// when the key already exists the upload fails instead of overwriting.
func (u *S3Uploader) Upload(ctx context.Context, path, mimeType string, data []byte) (string, error) {
	start := time.Now()
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = common.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	if exists, err := u.exists(ctx, path); err != nil {
		u.logger.Error("storage.upload.head_failed", "path", path, "error", err)
		return "", common.WrapError(err, "check object existence")
	} else if exists {
		u.logger.Error("storage.upload.collision", "path", path)
		return "", common.NewAppError("STORAGE_COLLISION", fmt.Sprintf("object already exists at %s", path), common.ErrStorage)
	}

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		u.logger.Error("storage.upload.put_failed",
			"path", path,
			"bytes", len(data),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.WrapError(err, "put object")
	}

	url := u.PublicURL(path)
	u.logger.Info("storage.upload.ok",
		"path", path,
		"bytes", len(data),
		"url", url,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return url, nil
}

// PublicURL is derived from the path-style addressing rule of the endpoint.
func (u *S3Uploader) PublicURL(path string) string {
	return u.endpoint + "/" + u.bucket + "/" + path
}

func (u *S3Uploader) exists(ctx context.Context, path string) (bool, error) {
	_, err := u.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return false, nil
			}
		}
		return false, err
	}
	return true, nil
}
