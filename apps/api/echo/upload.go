package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

func isMultipart(ctx echo.Context) bool {
	return strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formUpload opens the file sent in the multipart field; the upload is nil when no file was sent.
// done must be called once the upload has been consumed.
func formUpload(ctx echo.Context, field string, maxSize int64) (up *core.Upload, done func(), err error) {
	done = func() {}
	if !isMultipart(ctx) {
		return nil, done, nil
	}

	fh, err := ctx.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, done, nil
		}
		return nil, done, errors.Wrap(err, "reading form file")
	}
	if maxSize > 0 && fh.Size > maxSize {
		return nil, done, core.NewValidationError(nil, core.FieldError{Field: field, Error: errUploadTooLarge})
	}

	f, err := fh.Open()
	if err != nil {
		return nil, done, errors.Wrap(err, "opening form file")
	}
	done = func() { _ = f.Close() }

	upload, err := core.NewUpload(fh.Filename, f)
	if err != nil {
		done()
		if vErr, ok := errors.Cause(err).(*core.ValidationError); ok {
			for i := range vErr.Fields {
				vErr.Fields[i].Field = field
			}
		}
		return nil, func() {}, err
	}
	return &upload, done, nil
}

// formString returns the value of a multipart field, or nil when the field was not sent.
func formString(ctx echo.Context, field string) *string {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	if vals, ok := form.Value[field]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}
