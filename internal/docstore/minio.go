package docstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

var _ Backend = (*MinioBackend)(nil)

type MinioParams struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioBackend stores documents as <name>.json objects in one S3 compatible bucket.
// The bucket is created with the first write if missing.
type MinioBackend struct {
	client *minio.Client
	bucket string

	bucketMutex sync.Mutex
	bucketReady bool
}

func NewMinioBackend(params MinioParams) (*MinioBackend, error) {
	client, err := minio.New(params.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(params.AccessKey, params.SecretKey, ""),
		Secure: params.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new minio client: %w", err)
	}
	return &MinioBackend{
		client: client,
		bucket: params.Bucket,
	}, nil
}

func objectName(name string) string {
	return name + ".json"
}

func (b *MinioBackend) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, b.mapErr(err)
	}
	defer func() {
		if err := obj.Close(); err != nil {
			log.Warnf("close minio object %s: %s", name, err)
		}
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, b.mapErr(err)
	}
	return data, nil
}

func (b *MinioBackend) Put(ctx context.Context, name string, data []byte) error {
	if err := b.ensureBucket(ctx); err != nil {
		return err
	}

	_, err := b.client.PutObject(
		ctx,
		b.bucket,
		objectName(name),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("put object %s: %w", name, err)
	}
	return nil
}

func (b *MinioBackend) ensureBucket(ctx context.Context) error {
	b.bucketMutex.Lock()
	defer b.bucketMutex.Unlock()

	if b.bucketReady {
		return nil
	}

	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", b.bucket, err)
	}
	if !exists {
		if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket %s: %w", b.bucket, err)
		}
		log.Debugf("minio bucket [%s] created", b.bucket)
	}

	b.bucketReady = true
	return nil
}

func (b *MinioBackend) mapErr(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrDocumentNotFound
	default:
		return err
	}
}
