// Package publish mirrors generated files to an S3 compatible bucket.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type S3Sink struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

func NewS3Sink(cfg S3Config) (*S3Sink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Sink{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Sink) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Put stores content under <runID>/<relPath>.
func (s *S3Sink) Put(ctx context.Context, runID, relPath string, content []byte) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("sink is nil")
	}
	key, err := ObjectKey(runID, relPath)
	if err != nil {
		return err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	if content == nil {
		content = []byte{}
	}

	_, err = s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: ContentType(relPath),
	})
	return err
}

// List returns the relative paths stored for runID, sorted.
func (s *S3Sink) List(ctx context.Context, runID string) ([]string, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("sink is nil")
	}
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, fmt.Errorf("run_id is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	prefix := strings.TrimSuffix(runID, "/") + "/"
	paths := make([]string, 0, 256)
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if obj.Key == "" {
			continue
		}
		paths = append(paths, strings.TrimPrefix(obj.Key, prefix))
	}
	sort.Strings(paths)
	return paths, nil
}

// ObjectKey joins a run id and a slash separated relative path.
func ObjectKey(runID, relPath string) (string, error) {
	runID = strings.Trim(strings.TrimSpace(runID), "/")
	relPath = strings.TrimLeft(strings.TrimSpace(relPath), "/")
	if runID == "" {
		return "", fmt.Errorf("run_id is required")
	}
	if relPath == "" {
		return "", fmt.Errorf("path is required")
	}
	for _, part := range strings.Split(relPath, "/") {
		if part == ".." {
			return "", fmt.Errorf("path %q leaves the run prefix", relPath)
		}
	}
	return runID + "/" + relPath, nil
}

// ContentType picks the MIME type of a corpus file.
func ContentType(relPath string) string {
	switch {
	case strings.HasSuffix(relPath, ".model"):
		return "application/vnd.ms-package.3dmanufacturing-3dmodel+xml"
	case strings.HasSuffix(relPath, ".3mf"):
		return "application/vnd.ms-package.3dmanufacturing-3dmodel"
	case strings.HasSuffix(relPath, ".rels"):
		return "application/vnd.openxmlformats-package.relationships+xml"
	case strings.HasSuffix(relPath, ".yaml"):
		return "application/yaml"
	}
	return "application/octet-stream"
}
