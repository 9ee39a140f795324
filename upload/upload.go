package upload

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader puts finished files into a bucket.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

type S3Uploader struct {
	bucket   string
	prefix   string
	uploader *s3manager.Uploader
}

// NewS3Uploader builds a session for region. A non-empty endpoint targets an
// S3 compatible server (minio, localstack) with path style addressing.
func NewS3Uploader(bucket, prefix, region, endpoint string) (*S3Uploader, error) {
	cfg := &aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create an AWS session: %w", err)
	}
	return &S3Uploader{
		bucket:   bucket,
		prefix:   prefix,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (u *S3Uploader) Key(name string) string {
	return u.prefix + name
}

func (u *S3Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(u.Key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("audio/midi"),
	})
	if err != nil {
		return "", fmt.Errorf("error from S3: %w", err)
	}
	return out.Location, nil
}
