package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/shared/constant"
)

var ErrNoBucket = errors.New("receipt bucket is not configured")

// Object is one receipt document.
type Object struct {
	Directory   string
	Name        string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

func (o Object) Key() string {
	return path.Join(o.Directory, o.Name)
}

// Store archives receipts in an S3-compatible bucket and returns their public URL.
type Store interface {
	Put(ctx context.Context, object Object) (url string, err error)
}

type store struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Store {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, constant.Empty)),
		awsConfig.WithRegion(s3Cfg.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &store{
		client: client,
		bucket: s3Cfg.BucketName,
		domain: strings.TrimSuffix(s3Cfg.PublicDomain, "/"),
		otel:   otel,
	}
}

func (s *store) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if s.bucket == constant.Empty {
		return constant.Empty, ErrNoBucket
	}

	key := object.Key()

	scope.SetAttributes(map[string]any{
		"s3.bucket": s.bucket,
		"s3.key":    key,
		"s3.size":   len(object.Body),
	})

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(object.Body),
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(int64(len(object.Body))),
		Metadata:      object.Metadata,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to put receipt")

		return constant.Empty, fmt.Errorf("failed to put %s: %w", key, err)
	}

	return s.domain + "/" + key, nil
}
