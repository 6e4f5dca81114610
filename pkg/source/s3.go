package source

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the settings for OpenS3. Endpoint and PathStyle cover
// S3-compatible stores like MinIO or DigitalOcean Spaces.
type S3Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PathStyle bool
}

// OpenS3 creates an S3 client from static credentials.
func OpenS3(cfg S3Config) *s3.Client {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return s3.New(s3.Options{}, opts...)
}

// S3Option configures the S3 resolver.
type S3Option func(*s3Options)

type s3Options struct {
	prefix string
}

// WithKeyPrefix prepends a prefix to every object key, for buckets that
// hold more than translation bundles.
func WithKeyPrefix(prefix string) S3Option {
	return func(o *s3Options) {
		o.prefix = prefix
	}
}

// S3 returns a resolver reading JSON namespace fragments from object
// storage under {prefix}/{locale}/{namespace}.json.
func S3(client *s3.Client, bucket, namespace string, opts ...S3Option) func(ctx context.Context, locale string) (map[string]any, error) {
	o := &s3Options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(ctx context.Context, locale string) (map[string]any, error) {
		key := path.Join(o.prefix, locale, namespace+".json")

		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("source: fetching s3://%s/%s: %w", bucket, key, err)
		}
		defer out.Body.Close()

		var frag map[string]any
		if err := json.NewDecoder(out.Body).Decode(&frag); err != nil {
			return nil, fmt.Errorf("source: decoding s3://%s/%s: %w", bucket, key, err)
		}

		return frag, nil
	}
}
