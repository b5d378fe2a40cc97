// Package minio turns s3:// blob references into presigned, time-limited links.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kurochkinivan/inspection_data/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	SchemeS3 = "s3"

	defaultLinkTTL = 15 * time.Minute
	minLinkTTL     = time.Second
	maxLinkTTL     = 7 * 24 * time.Hour
)

type Presigner struct {
	client *minio.Client
	ttl    time.Duration
}

func NewPresigner(cfg config.Storage) (*Presigner, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Presigner{
		client: client,
		ttl:    clampTTL(cfg.LinkTTL),
	}, nil
}

// ResolveURI presigns s3://bucket/key references. Other URIs are returned as is.
func (p *Presigner) ResolveURI(ctx context.Context, uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != SchemeS3 {
		return uri, nil
	}

	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", fmt.Errorf("invalid blob reference %q", uri)
	}

	link, err := p.client.PresignedGetObject(ctx, bucket, key, p.ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %q: %w", uri, err)
	}

	return link.String(), nil
}

func clampTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl == 0:
		return defaultLinkTTL
	case ttl < minLinkTTL:
		return minLinkTTL
	case ttl > maxLinkTTL:
		return maxLinkTTL
	default:
		return ttl
	}
}
