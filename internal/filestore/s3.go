package filestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint        string
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	// PublicURL is the base URL objects are linked from, e.g. a CDN.
	PublicURL string
}

// S3 keeps files in a bucket of an S3 compatible object store.
type S3 struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ Store = (*S3)(nil)

func NewS3(ctx context.Context, conf S3Config) (*S3, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, conf.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %q: %w", conf.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{Region: conf.Region}); err != nil {
			return nil, fmt.Errorf("creating bucket %q: %w", conf.Bucket, err)
		}
	}

	publicURL := conf.PublicURL
	if publicURL == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + conf.Endpoint + "/" + conf.Bucket
	}

	return &S3{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *S3) put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("uploading %q: %w", key, err)
	}
	return nil
}

func (s *S3) WriteRecipeImage(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (string, error) {
	key := recipeImageKey(recipeID, suffix)
	if err := s.put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3) WriteProfilePicture(ctx context.Context, userID int64, suffix, contentType string, data []byte) (string, error) {
	key := profilePictureKey(userID, suffix)
	if err := s.put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, strings.TrimLeft(key, "/"), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *S3) FileURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}

func (s *S3) Owns(key string) bool {
	return owns(key)
}
