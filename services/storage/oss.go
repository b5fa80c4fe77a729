package storagesvc

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

type ossStore struct {
	bucket     *oss.Bucket
	prefix     string
	publicBase string
}

var _ core.ObjectStore = (*ossStore)(nil)

// NewOSSStore returns an ObjectStore backed by an Aliyun OSS bucket.
// Object buckets are folders of that bucket: <prefix>/<bucket>/<key>.
func NewOSSStore(conf *core.Config) (core.ObjectStore, error) {
	sc := conf.Storage
	client, err := oss.New(sc.OSSEndpoint, sc.OSSAccessKey, sc.OSSSecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "creating oss client")
	}
	bucket, err := client.Bucket(sc.OSSBucket)
	if err != nil {
		return nil, errors.Wrap(err, "opening oss bucket")
	}

	publicBase := strings.TrimSuffix(sc.OSSPublicBase, "/")
	if publicBase == "" {
		endpoint := strings.TrimPrefix(strings.TrimPrefix(sc.OSSEndpoint, "https://"), "http://")
		publicBase = "https://" + sc.OSSBucket + "." + endpoint
	}
	return &ossStore{
		bucket:     bucket,
		prefix:     strings.Trim(sc.OSSPrefix, "/"),
		publicBase: publicBase,
	}, nil
}

func (s ossStore) objectKey(bucket, key string) (string, error) {
	if !core.ValidObjectKey(key) {
		return "", errors.Errorf("invalid object key %q", key)
	}
	return path.Join(s.prefix, bucket, key), nil
}

func (s ossStore) Put(ctx context.Context, bucket, key string, r io.Reader, contentType string) (string, error) {
	objKey, err := s.objectKey(bucket, key)
	if err != nil {
		return "", err
	}
	opts := []oss.Option{oss.WithContext(ctx)}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err = s.bucket.PutObject(objKey, r, opts...); err != nil {
		return "", errors.Wrap(err, "putting oss object")
	}
	return s.PublicURL(bucket, key), nil
}

func (s ossStore) Remove(ctx context.Context, bucket, key string) error {
	objKey, err := s.objectKey(bucket, key)
	if err != nil {
		return err
	}
	if err = s.bucket.DeleteObject(objKey, oss.WithContext(ctx)); err != nil {
		return errors.Wrap(err, "deleting oss object")
	}
	return nil
}

func (s ossStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	objKey, err := s.objectKey(bucket, key)
	if err != nil {
		return false, err
	}
	exists, err := s.bucket.IsObjectExist(objKey, oss.WithContext(ctx))
	if err != nil {
		return false, errors.Wrap(err, "checking oss object")
	}
	return exists, nil
}

func (s ossStore) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + path.Join(s.prefix, bucket, key)
}
