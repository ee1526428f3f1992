package photos

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const DefaultURLExpiry = 15 * time.Minute

type PresignedURL struct {
	URL       string              `json:"url"`
	Method    string              `json:"method"`
	Key       string              `json:"key"`
	Headers   map[string][]string `json:"headers,omitempty"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

// Presigner hands out short lived S3 URLs, photo bytes never pass through us.
type Presigner struct {
	presignClient *s3.PresignClient
	bucket        string
	expiry        time.Duration
	now           func() time.Time
}

// NewPresigner loads the default AWS credential chain. A non-empty endpoint
// targets an S3 compatible store (minio, localstack) with path style URLs.
func NewPresigner(ctx context.Context, region, bucket, endpoint string, expiry time.Duration) (*Presigner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return NewPresignerFromClient(client, bucket, expiry), nil
}

func NewPresignerFromClient(client *s3.Client, bucket string, expiry time.Duration) *Presigner {
	if expiry <= 0 {
		expiry = DefaultURLExpiry
	}
	return &Presigner{
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		expiry:        expiry,
		now:           time.Now,
	}
}

func (p *Presigner) UploadURL(ctx context.Context, key, contentType string) (_ *PresignedURL, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.presign.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := p.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return nil, fmt.Errorf("presign put object: %w", err)
	}

	return &PresignedURL{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		Headers:   req.SignedHeader,
		ExpiresAt: p.now().Add(p.expiry),
	}, nil
}

func (p *Presigner) DownloadURL(ctx context.Context, key string) (_ *PresignedURL, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "photos.presign.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := p.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return nil, fmt.Errorf("presign get object: %w", err)
	}

	return &PresignedURL{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		ExpiresAt: p.now().Add(p.expiry),
	}, nil
}
