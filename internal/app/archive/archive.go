// Package archive pushes finished artifacts to an S3-compatible bucket
// so the workspace can be pruned without losing past episodes.
package archive

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/util/files"
	"voice-blog/internal/app/workflow"
	"voice-blog/internal/config"
)

type Uploader struct {
	client   *minio.Client
	bucket   string
	prefix   string
	endpoint string
	useSSL   bool
	logger   *zap.SugaredLogger
}

func NewUploader(settings config.ArchiveSettings, logger *zap.SugaredLogger) (*Uploader, error) {
	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.AccessKey, settings.SecretKey, ""),
		Secure: settings.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &Uploader{
		client:   client,
		bucket:   settings.Bucket,
		prefix:   settings.Prefix,
		endpoint: settings.Endpoint,
		useSSL:   settings.UseSSL,
		logger:   logger,
	}, nil
}

// EnsureBucket creates the target bucket when it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", u.bucket, err)
	}
	if exists {
		return nil
	}
	if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", u.bucket, err)
	}
	return nil
}

// UploadFolder pushes every artifact the folder has produced and returns
// the object keys. Artifacts the pipeline has not produced yet are
// skipped, a folder with none at all is an error.
func (u *Uploader) UploadFolder(ctx context.Context, job workflow.Job) ([]string, error) {
	artifacts := []struct {
		path        string
		contentType string
	}{
		{job.ProcessedAudio, "audio/mpeg"},
		{job.Transcript, "text/plain; charset=utf-8"},
		{job.BlogPost, "text/markdown; charset=utf-8"},
	}

	var uploaded []string
	for _, a := range artifacts {
		if !files.ExistsNonEmpty(a.path) {
			continue
		}

		key := u.objectKey(job.Folder, filepath.Base(a.path))
		_, err := u.client.FPutObject(ctx, u.bucket, key, a.path, minio.PutObjectOptions{
			ContentType: a.contentType,
		})
		if err != nil {
			return uploaded, apperrors.Wrapf(err, "failed to upload %s", key)
		}

		uploaded = append(uploaded, key)
		u.logger.Infow("artifact archived", "folder", job.Folder, "key", key)
	}

	if len(uploaded) == 0 {
		return nil, fmt.Errorf("folder %s has no artifacts to archive", job.Folder)
	}
	return uploaded, nil
}

func (u *Uploader) objectKey(folder, name string) string {
	if u.prefix == "" {
		return path.Join(folder, name)
	}
	return path.Join(u.prefix, folder, name)
}

// ObjectURL returns the direct URL of an archived object.
func (u *Uploader) ObjectURL(key string) string {
	protocol := "http"
	if u.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, u.endpoint, u.bucket, key)
}
