package core

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// number of bytes read to sniff the content type of an upload
const sniffLen = 3072

// Object buckets
const (
	BucketGallery     = "gallery"
	BucketInstructors = "instructors"
)

// ObjectStore is any service that can keep uploaded files and expose them publicly.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, r io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, bucket, key string) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
	PublicURL(bucket, key string) string
}

// NewObjectKey returns a unique object key of the form `<unix-millis>-<random><.ext>`.
// The extension is taken from filename and lowercased.
func NewObjectKey(filename string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + random + strings.ToLower(filepath.Ext(filename))
}

// KeyFromURL derives an object key from the last path segment of a public URL.
// Only records created before keys were stored need it.
func KeyFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return ""
	}
	key := path.Base(u.Path)
	if key == "." {
		return ""
	}
	return key
}

// ValidObjectKey reports whether key names an object directly inside a bucket.
func ValidObjectKey(key string) bool {
	return key != "" && key == path.Base(key) && !strings.HasPrefix(key, ".")
}

// Upload is a file received from a client, ready to be put in an ObjectStore.
type Upload struct {
	Filename    string
	ContentType string // sniffed from the content, never trusted from the client
	Content     io.Reader
}

// NewUpload sniffs the content type of r. Content keeps every byte of r.
// A filename without extension gets the one matching the detected type.
func NewUpload(filename string, r io.Reader) (Upload, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Upload{}, errors.Wrap(err, "reading upload")
	}
	head = head[:n]
	if n == 0 {
		return Upload{}, NewValidationError(nil, FieldError{Field: "file", Error: "file is empty"})
	}

	mime := mimetype.Detect(head)
	if filepath.Ext(filename) == "" {
		filename += mime.Extension()
	}
	ct := mime.String()
	if i := strings.IndexByte(ct, ';'); i > 0 { // drop params, eg. "; charset=utf-8"
		ct = ct[:i]
	}
	return Upload{
		Filename:    filename,
		ContentType: ct,
		Content:     io.MultiReader(bytes.NewReader(head), r),
	}, nil
}

func (u Upload) IsImage() bool { return strings.HasPrefix(u.ContentType, "image/") }
func (u Upload) IsVideo() bool { return strings.HasPrefix(u.ContentType, "video/") }
