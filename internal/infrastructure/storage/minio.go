package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/config"
)

// MinIOClient wraps MinIO operations for audio recordings and resumes.
type MinIOClient struct {
	client       *minio.Client
	audioBucket  string
	resumeBucket string
}

// NewMinIOClient creates a new MinIO client and ensures the buckets exist.
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:       minioClient,
		audioBucket:  cfg.AudioBucket,
		resumeBucket: cfg.ResumeBucket,
	}

	ctx := context.Background()
	for _, bucket := range []string{cfg.AudioBucket, cfg.ResumeBucket} {
		if err := client.ensureBucket(ctx, bucket); err != nil {
			return nil, fmt.Errorf("failed to initialize bucket %s: %w", bucket, err)
		}
	}

	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// UploadAudio stores an audio recording and returns its object name.
func (m *MinIOClient) UploadAudio(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.audioBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload audio: %w", err)
	}
	return nil
}

// FetchAudio downloads a stored audio recording into memory.
func (m *MinIOClient) FetchAudio(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.audioBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		return nil, fmt.Errorf("failed to read audio object: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadResume stores resume text for later matching.
func (m *MinIOClient) UploadResume(ctx context.Context, objectName string, content string) error {
	reader := bytes.NewReader([]byte(content))
	_, err := m.client.PutObject(ctx, m.resumeBucket, objectName, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("failed to upload resume: %w", err)
	}
	return nil
}

// GetAudioURL returns a presigned URL for an audio object. Transcription
// providers download the recording through this URL.
func (m *MinIOClient) GetAudioURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.audioBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// ListAudio lists stored recordings under the given prefix.
func (m *MinIOClient) ListAudio(ctx context.Context, prefix string) ([]string, error) {
	var files []string

	objectCh := m.client.ListObjects(ctx, m.audioBucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, object.Key)
	}

	return files, nil
}

// GetBucketInfo returns connection details for the health endpoint.
func (m *MinIOClient) GetBucketInfo(ctx context.Context) (map[string]interface{}, error) {
	exists, err := m.client.BucketExists(ctx, m.audioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	info := map[string]interface{}{
		"audio_bucket":  m.audioBucket,
		"resume_bucket": m.resumeBucket,
		"bucket_exists": exists,
		"endpoint":      m.client.EndpointURL().String(),
	}
	return info, nil
}
