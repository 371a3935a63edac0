package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/errmsg/pkg/catalog"
)

// S3Client defines the S3 operations used by S3Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains the settings for reading catalogs from a bucket.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`                 // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`         // For S3-compatible services like MinIO
	Prefix         string `env:"PREFIX"`                   // Object key prefix, e.g. "locales/"
	Format         string `env:"FORMAT" envDefault:"yaml"` // Document format: yaml, json or toml
}

// NewS3Client builds an AWS S3 client from cfg.
func NewS3Client(ctx context.Context, cfg S3Config, optFns ...func(*config.LoadOptions) error) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, ErrMissingS3Region
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}
	awsOptions = append(awsOptions, optFns...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadAWS, err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

// S3Loader reads "<prefix><locale>.<format>" objects from a bucket.
type S3Loader struct {
	client S3Client
	bucket string
	prefix string
	ext    string
	parser catalog.Parser
}

// NewS3Loader creates a loader for bucket using client. Format defaults to yaml.
func NewS3Loader(client S3Client, cfg S3Config) (*S3Loader, error) {
	if client == nil {
		return nil, ErrNilS3Client
	}
	if cfg.Bucket == "" {
		return nil, ErrMissingS3Bucket
	}
	ext := strings.TrimPrefix(strings.ToLower(cfg.Format), ".")
	if ext == "" {
		ext = "yaml"
	}
	p := catalog.ParserForExtension(ext)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return &S3Loader{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		ext:    ext,
		parser: p,
	}, nil
}

// Key returns the object key holding the catalog for code.
func (l *S3Loader) Key(code string) string {
	return l.prefix + code + "." + l.ext
}

// Load implements Loader.
func (l *S3Loader) Load(ctx context.Context, code string) (map[string]any, error) {
	key := l.Key(code)
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, l.bucket, key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", l.bucket, key, err)
	}
	return l.parser.Parse(ctx, data)
}

func classifyS3Error(err error, bucket, key string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("s3://%s/%s: %w", bucket, key, fs.ErrNotExist)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("s3://%s/%s: %w", bucket, key, fs.ErrNotExist)
		case "AccessDenied":
			return fmt.Errorf("s3://%s/%s: %w", bucket, key, fs.ErrPermission)
		}
	}

	return fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
}
