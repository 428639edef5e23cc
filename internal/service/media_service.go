package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/ghostwriterhq/scheduler/configs"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MediaService offloads inline data-URI images attached to a draft into R2
// object storage, so the stored post carries a short public URL instead of
// a megabyte of base64.
type MediaService interface {
	// OffloadImage returns a public URL for the given image reference.
	// Remote URLs pass through untouched; data URIs are decoded, sniffed
	// and uploaded.
	OffloadImage(ctx context.Context, imageURL string) (string, error)
	Enabled() bool
}

type mediaService struct {
	config cfg.Config
}

func NewMediaService(config cfg.Config) MediaService {
	return &mediaService{config: config}
}

func (m *mediaService) Enabled() bool {
	r2 := m.config.R2
	return r2.AccountID != "" && r2.AccessKey != "" && r2.SecretKey != "" && r2.BucketName != ""
}

func (m *mediaService) OffloadImage(ctx context.Context, imageURL string) (string, error) {
	if !strings.HasPrefix(imageURL, "data:") {
		return imageURL, nil
	}
	if !m.Enabled() {
		return imageURL, nil
	}

	data, err := decodeDataURI(imageURL)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	kind, err := filetype.Image(data)
	if err != nil {
		err = fmt.Errorf("attached data is not an image: %w", err)
		slog.Info(err.Error())
		return "", err
	}

	key, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key = key + "." + kind.Extension

	if err := m.upload(ctx, key, data, kind.MIME.Value); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(m.config.R2.PublicURL, "/"), key), nil
}

func decodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("malformed data URI payload: %w", err)
	}
	return data, nil
}

func (m *mediaService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(m.config.R2.AccessKey, m.config.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", m.config.R2.AccountID))
	}), nil
}

func (m *mediaService) upload(ctx context.Context, key string, data []byte, contentType string) error {
	client, err := m.client(ctx)
	if err != nil {
		return err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}
