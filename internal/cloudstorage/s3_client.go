// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package cloudstorage retrieves Parquet objects from S3-compatible stores.
package cloudstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	// ErrMissingCredentials is returned before any I/O is attempted when
	// remote access is requested without both required secrets.
	ErrMissingCredentials = errors.New("s3 access requires both an access key id and a secret access key")

	// ErrObjectNotFound is returned when the bucket or key does not resolve.
	ErrObjectNotFound = errors.New("s3 object not found")
)

// ObjectSpec identifies one object in a bucket.
type ObjectSpec struct {
	Bucket string
	Key    string
}

// ParseS3URI splits an s3://bucket/key URI into its parts.
func ParseS3URI(uri string) (ObjectSpec, error) {
	const scheme = "s3://"
	if !strings.HasPrefix(uri, scheme) {
		return ObjectSpec{}, fmt.Errorf("not an s3 uri: %s", uri)
	}
	rest := strings.TrimPrefix(uri, scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return ObjectSpec{}, fmt.Errorf("s3 uri must look like s3://bucket/key, got %s", uri)
	}
	return ObjectSpec{Bucket: bucket, Key: key}, nil
}

type s3Config struct {
	region   string
	applyS3s []func(*s3.Options)
}

// S3Option is a functional option for NewS3Client.
type S3Option func(*s3Config)

// WithRegion overrides the AWS region.
func WithRegion(region string) S3Option {
	return func(c *s3Config) {
		c.region = region
	}
}

// WithEndpoint forces a custom S3 endpoint (eg MinIO, Ceph).
func WithEndpoint(url string) S3Option {
	return func(c *s3Config) {
		c.applyS3s = append(c.applyS3s, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(url)
		})
	}
}

// WithPathStyle uses path-style addressing instead of virtual-host.
func WithPathStyle() S3Option {
	return func(c *s3Config) {
		c.applyS3s = append(c.applyS3s, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}
}

// S3Client wraps the AWS SDK client for read-only object fetches.
type S3Client struct {
	client *s3.Client
}

// NewS3Client builds a client from explicit static credentials. Both secrets
// are required; validation happens here, before any network traffic.
func NewS3Client(ctx context.Context, accessKeyID, secretAccessKey string, opts ...S3Option) (*S3Client, error) {
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, ErrMissingCredentials
	}

	cfg := s3Config{region: "us-east-1"}
	for _, opt := range opts {
		opt(&cfg)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		for _, apply := range cfg.applyS3s {
			apply(o)
		}
	})

	return &S3Client{client: client}, nil
}

// FetchObject downloads the entire object into memory. A range-limited read
// of the trailing footer would be cheaper for metadata-only sessions; the
// whole-object fetch keeps one retrieval serving both the footer parse and
// the data preview, at the cost of memory proportional to object size.
func (c *S3Client) FetchObject(ctx context.Context, spec ObjectSpec) ([]byte, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(spec.Bucket),
		Key:    aws.String(spec.Key),
	})
	if err != nil {
		if s3ErrorIs404(err) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrObjectNotFound, spec.Bucket, spec.Key)
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", spec.Bucket, spec.Key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", spec.Bucket, spec.Key, err)
	}
	return data, nil
}

func s3ErrorIs404(err error) bool {
	var noKeyErr *types.NoSuchKey
	var noBucketErr *types.NoSuchBucket
	return errors.As(err, &noKeyErr) || errors.As(err, &noBucketErr)
}
