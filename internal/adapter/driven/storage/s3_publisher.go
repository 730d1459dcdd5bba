package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
)

// PutObjectAPI is the subset of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options selects the destination bucket and the credentials used to reach it.
type S3Options struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}

// S3Publisher uploads exported reports to an S3 bucket.
type S3Publisher struct {
	opts   S3Options
	client PutObjectAPI
	mu     sync.Mutex
}

// NewS3Publisher cria um publisher; o cliente S3 é criado na primeira publicação.
func NewS3Publisher(opts S3Options) *S3Publisher {
	return &S3Publisher{opts: opts}
}

// NewS3PublisherWithClient uses an existing client instead of loading the AWS config.
func NewS3PublisherWithClient(opts S3Options, client PutObjectAPI) *S3Publisher {
	return &S3Publisher{opts: opts, client: client}
}

var _ repository.ReportPublisher = (*S3Publisher)(nil)

func (p *S3Publisher) getClient(ctx context.Context) (PutObjectAPI, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if p.opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(p.opts.Profile))
	}
	if p.opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(p.opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", p.opts.Profile, err)
	}

	p.client = s3.NewFromConfig(cfg)
	return p.client, nil
}

// Publish uploads the file at localPath under the configured prefix and returns its s3:// URI.
func (p *S3Publisher) Publish(ctx context.Context, localPath string) (string, error) {
	if p.opts.Bucket == "" {
		return "", fmt.Errorf("no S3 bucket configured")
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report for upload: %w", err)
	}
	defer file.Close()

	key := objectKey(p.opts.Prefix, localPath)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(localPath), p.opts.Bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", p.opts.Bucket, key), nil
}

func objectKey(prefix, localPath string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return filepath.Base(localPath)
	}
	return path.Join(prefix, filepath.Base(localPath))
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
