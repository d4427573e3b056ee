package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// FilePart is one file in a multipart create/update body.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// PostMultipart performs a POST with form fields and file parts, used by
// the entities whose create endpoints take uploads (instructor photos,
// e-book PDFs and covers, podcast audio).
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any, fallback string) error {
	return c.doMultipart(ctx, http.MethodPost, path, fields, files, out, fallback)
}

// PatchMultipart performs a PATCH with form fields and file parts.
func (c *Client) PatchMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any, fallback string) error {
	return c.doMultipart(ctx, http.MethodPatch, path, fields, files, out, fallback)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, out any, fallback string) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return &APIError{Message: fallback, Err: err}
		}
	}

	for _, file := range files {
		if file.Content == nil {
			continue
		}
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return &APIError{Message: fallback, Err: err}
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return &APIError{Message: fallback, Err: err}
		}
	}

	if err := writer.Close(); err != nil {
		return &APIError{Message: fallback, Err: err}
	}

	req, err := c.newRequest(ctx, method, path, nil, buf)
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out, fallback)
}
