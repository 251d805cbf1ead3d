package rest

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// Form ; multipart payload of text fields plus one optional file part.
type Form struct {
	// Text fields ; defined, non-empty values only
	Fields map[string]string
	// Form name of the file part ; default: "file"
	FileField string
	// Local path of the file to attach ; optional
	FilePath string
}

// DoMultipart sends [form] as multipart/form-data and
// decodes a 2xx body into [out], when given.
func (c *Client) DoMultipart(ctx context.Context, method, path string, form Form, out any) error {

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, vs := range form.Fields {
		if err := mw.WriteField(key, vs); err != nil {
			return err
		}
	}

	if form.FilePath != "" {
		field := form.FileField
		if field == "" {
			field = "file"
		}
		src, err := os.Open(form.FilePath)
		if err != nil {
			return err
		}
		part, err := mw.CreateFormFile(field, filepath.Base(form.FilePath))
		if err != nil {
			src.Close()
			return err
		}
		if _, err = io.Copy(part, src); err != nil {
			src.Close()
			return err
		}
		src.Close()
	}

	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set(hContentType, mw.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) PostMultipart(ctx context.Context, path string, form Form, out any) error {
	return c.DoMultipart(ctx, http.MethodPost, path, form, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, form Form, out any) error {
	return c.DoMultipart(ctx, http.MethodPut, path, form, out)
}
