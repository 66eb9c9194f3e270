// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pdiddy/filing-converter/pkg/types"
)

// formField is the multipart field the conversion service reads the document from.
const formField = "file"

// newUploadRequest builds the conversion POST. The document is streamed into
// the multipart body through a pipe so it is never held in memory whole.
func newUploadRequest(ctx context.Context, url string, file types.SelectedFile, requestID string) (*http.Request, error) {
	if file.Open == nil {
		return nil, fmt.Errorf("no payload for %s", file.Name)
	}
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Name, err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer src.Close()
		part, err := mw.CreateFormFile(formField, file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(fmt.Errorf("reading %s: %w", file.Name, err))
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		pr.CloseWithError(err)
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, application/json;q=0.9, */*;q=0.8")
	req.Header.Set("X-Request-ID", requestID)
	return req, nil
}
