// Package publish uploads a built site directory to S3.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrEmptyDir is returned when the directory to publish holds no files.
var ErrEmptyDir = errors.New("publish: directory contains no files")

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads files to an S3 bucket under a key prefix.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used during uploads.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a publisher targeting the given bucket and key prefix.
func New(client ObjectPutter, bucket, prefix string, opts ...Option) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	p := &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish uploads every file under dir, keyed by its path relative to dir.
// All objects of one call share a deploy ID recorded in their metadata.
// It returns the deploy ID and the number of uploaded objects.
func (p *Publisher) Publish(ctx context.Context, dir string) (string, int, error) {
	files, err := collectFiles(dir)
	if err != nil {
		return "", 0, err
	}
	if len(files) == 0 {
		return "", 0, ErrEmptyDir
	}

	deployID := uuid.NewString()
	uploadedAt := time.Now().UTC().Format(time.RFC3339)

	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			return deployID, 0, fmt.Errorf("publish: reading %s: %w", path, err)
		}

		key := p.prefix + rel
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        strings.NewReader(string(data)),
			ContentType: aws.String(contentType(rel)),
			Metadata: map[string]string{
				"deploy-id":   deployID,
				"uploaded-at": uploadedAt,
			},
		})
		if err != nil {
			return deployID, 0, fmt.Errorf("publish: uploading %s: %w", key, err)
		}

		p.logger.Info("uploaded object", "key", key, "bytes", len(data))
	}

	p.logger.Info("publish complete",
		"deploy_id", deployID, "objects", len(files), "bucket", p.bucket)
	return deployID, len(files), nil
}

// collectFiles lists the regular files under dir as sorted slash-separated
// relative paths, so uploads are deterministic.
func collectFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish: walking %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// contentType resolves a MIME type from the file extension, defaulting to
// octet-stream.
func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
