package s3

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"basesync/internal/config"
	"basesync/internal/domain"
	"basesync/internal/port"
)

type s3Retriever struct {
	client     *s3.Client
	downloader *manager.Downloader
	bucket     string
	cacheDir   string
	timeout    time.Duration
}

// NewRetriever creates an S3-backed FileRetriever. A source identifier is
// a key prefix; FetchFile resolves it to the most recently modified object
// under that prefix, which is how the export jobs publish "the latest
// file".
func NewRetriever(cfg *config.S3Config) (port.FileRetriever, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &s3Retriever{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     cfg.Bucket,
		cacheDir:   cfg.CacheDir,
		timeout:    cfg.FetchTimeout,
	}, nil
}

// FetchFile downloads the latest object under sourceID into the cache
// directory and returns its local path. The object is written to a temp
// path first and renamed into place, so a failed or interrupted download
// never corrupts a previously fetched copy.
func (r *s3Retriever) FetchFile(ctx context.Context, sourceID string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	key, err := r.latestKey(ctx, sourceID)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(r.cacheDir, filepath.Base(key))
	tmp, err := os.CreateTemp(r.cacheDir, filepath.Base(key)+".download-*")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %v", domain.ErrRetrievalFailed, err)
	}
	tmpPath := tmp.Name()

	_, err = r.downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: downloading %s: %v", domain.ErrRetrievalFailed, key, err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%w: placing %s: %v", domain.ErrRetrievalFailed, dest, err)
	}
	return dest, nil
}

// latestKey returns the key of the most recently modified object under
// prefix.
func (r *s3Retriever) latestKey(ctx context.Context, prefix string) (string, error) {
	var (
		latest   string
		modified time.Time
	)

	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: listing %s: %v", domain.ErrRetrievalFailed, prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || obj.LastModified == nil {
				continue
			}
			if obj.LastModified.After(modified) {
				modified = *obj.LastModified
				latest = *obj.Key
			}
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w: no objects under prefix %s", domain.ErrRetrievalFailed, prefix)
	}
	return latest, nil
}
