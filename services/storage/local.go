package storagesvc

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

type localStore struct {
	dir        string
	publicBase string
}

var _ core.ObjectStore = (*localStore)(nil)

// NewLocalStore returns an ObjectStore keeping objects under <uploadDir>/<bucket>/<key>.
// The API server exposes them under the public base URL.
func NewLocalStore(conf *core.Config) core.ObjectStore {
	return &localStore{
		dir:        conf.Storage.UploadDir,
		publicBase: strings.TrimSuffix(conf.Storage.PublicBase, "/"),
	}
}

func (s localStore) path(bucket, key string) (string, error) {
	if !core.ValidObjectKey(key) {
		return "", errors.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.dir, bucket, key), nil
}

func (s localStore) Put(ctx context.Context, bucket, key string, r io.Reader, _ string) (string, error) {
	fp, err := s.path(bucket, key)
	if err != nil {
		return "", err
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}
	if err = os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return "", errors.Wrap(err, "creating bucket dir")
	}

	f, err := os.OpenFile(fp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "creating object")
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(fp)
		return "", errors.Wrap(err, "writing object")
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrap(err, "closing object")
	}
	return s.PublicURL(bucket, key), nil
}

func (s localStore) Remove(ctx context.Context, bucket, key string) error {
	fp, err := s.path(bucket, key)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = os.Remove(fp); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing object")
	}
	return nil
}

func (s localStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	fp, err := s.path(bucket, key)
	if err != nil {
		return false, nil
	}
	if err = ctx.Err(); err != nil {
		return false, err
	}
	if _, err = os.Stat(fp); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "checking object")
	}
	return true, nil
}

func (s localStore) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + bucket + "/" + key
}
