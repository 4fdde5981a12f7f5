// Package s3store wraps the AWS SDK for S3-compatible object storage
// (S3, R2, MinIO). Uploaded assets are public; reads go through the
// bucket URL or a custom domain, never back through this service.
package s3store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/emeraldgate/core/internal/config"
)

type Client struct {
	client       *s3.Client
	bucket       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

// New builds a storage client from config. Returns nil when the bucket is
// not configured so callers can treat uploads as disabled.
func New(opts config.S3Options) *Client {
	if opts.Bucket == "" {
		return nil
	}

	cli := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = opts.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})

	return &Client{
		client:       cli,
		bucket:       opts.Bucket,
		endpoint:     strings.TrimRight(opts.Endpoint, "/"),
		customDomain: strings.TrimRight(opts.CustomDomain, "/"),
		pathStyle:    opts.PathStyle,
	}
}

// Upload stores an object under key and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return c.PublicURL(key), nil
}

// Delete removes an object. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete failed: %w", err)
	}
	return nil
}

// PublicURL returns the URL an uploaded key is served from: the custom
// domain when set, otherwise derived from the endpoint and bucket.
func (c *Client) PublicURL(key string) string {
	if c.customDomain != "" {
		return c.customDomain + "/" + key
	}
	if c.endpoint != "" {
		if c.pathStyle {
			return c.endpoint + "/" + c.bucket + "/" + key
		}
		return strings.Replace(c.endpoint, "://", "://"+c.bucket+".", 1) + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
}
