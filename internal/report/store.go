package report

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/recycler/internal/errors"
)

// Store persists encoded reports.
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
}

// Save encodes r and puts it into s.
func Save(ctx context.Context, s Store, r *Report) error {
	data, err := r.JSON()
	if err != nil {
		return errors.New("E010").Wrap(err)
	}
	return s.Put(ctx, r.Name(), data)
}

// FileStore writes reports into a directory.
type FileStore struct {
	Dir string
}

// Put implements Store.
func (s *FileStore) Put(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return errors.New("E010").WithFile(s.Dir).Wrap(err)
	}
	file := filepath.Join(s.Dir, name)
	if err := os.WriteFile(file, data, 0644); err != nil {
		return errors.New("E010").WithFile(file).Wrap(err)
	}
	return nil
}

// PutObjectAPI is the subset of *s3.Client the S3 store uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads reports to an S3 bucket.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: "us-east-1", Credentials: report.EnvCredentials()})
//	store := report.NewS3Store(client, "bench-reports", "recycler/")
type S3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Store creates a new S3 report store.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put implements Store.
func (s *S3Store) Put(ctx context.Context, name string, data []byte) error {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.New("E010").WithFile("s3://" + s.bucket + "/" + key).Wrap(err)
	}
	return nil
}

// EnvCredentials reads static credentials from AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func EnvCredentials() aws.CredentialsProvider {
	return aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("E010").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set for s3:// stores")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "EnvCredentials",
		}, nil
	}))
}

// OpenStore opens the store addressed by url: file://<dir> or
// s3://<bucket>/<prefix>. AWS_ENDPOINT_URL points s3 stores at a
// compatible endpoint.
func OpenStore(url, region string) (Store, error) {
	switch {
	case strings.HasPrefix(url, "file://"):
		return &FileStore{Dir: strings.TrimPrefix(url, "file://")}, nil

	case strings.HasPrefix(url, "s3://"):
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(url, "s3://"), "/")
		if bucket == "" {
			return nil, errors.New("E011").WithDetail("missing bucket in " + url)
		}
		opts := s3.Options{
			Region:      region,
			Credentials: EnvCredentials(),
		}
		if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
			opts.BaseEndpoint = aws.String(endpoint)
			opts.UsePathStyle = true
		}
		return NewS3Store(s3.New(opts), bucket, prefix), nil
	}
	return nil, errors.New("E011").WithDetail("unsupported store " + url)
}
