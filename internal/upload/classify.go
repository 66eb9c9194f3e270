// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"
)

// ErrorBodyKind says how the body of a rejected conversion was interpreted.
type ErrorBodyKind int

const (
	// BodyEmpty is a plain-text body with no usable text.
	BodyEmpty ErrorBodyKind = iota
	// BodyPlainText is a non-JSON body carrying text.
	BodyPlainText
	// BodyStructuredString is a JSON body that is a bare string.
	BodyStructuredString
	// BodyDetailString is a JSON object whose detail field is a string.
	BodyDetailString
	// BodyDetailOther is a JSON object whose detail field is any other non-null value.
	BodyDetailOther
	// BodyNoDetail is valid JSON that carries no usable detail.
	BodyNoDetail
	// BodyUnparseable is a body declared as JSON that could not be decoded.
	BodyUnparseable
)

var kindNames = map[ErrorBodyKind]string{
	BodyEmpty:            "empty",
	BodyPlainText:        "plain-text",
	BodyStructuredString: "structured-string",
	BodyDetailString:     "detail-string",
	BodyDetailOther:      "detail-other",
	BodyNoDetail:         "no-detail",
	BodyUnparseable:      "unparseable",
}

func (k ErrorBodyKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorBodyKind(%d)", int(k))
}

// ErrorBody is the classified body of a non-success response.
type ErrorBody struct {
	Kind ErrorBodyKind

	// Text is the message extracted from the body, empty when none applies.
	Text string

	// Cause is the decode error for BodyUnparseable.
	Cause error
}

// Message returns the user-facing text for the rejection, falling back to a
// generic message that names the status code.
func (b ErrorBody) Message(status int) string {
	if b.Text != "" {
		return b.Text
	}
	return GenericFailure(status)
}

// GenericFailure is the message used when a rejection carries no usable text.
func GenericFailure(status int) string {
	return fmt.Sprintf("Failed to convert XBRL file (status %d)", status)
}

// ClassifyErrorBody interprets the body of a rejected conversion using its
// declared Content-Type. JSON bodies yield a bare string, a string detail, or
// a serialized non-string detail; anything else is treated as plain text.
func ClassifyErrorBody(contentType string, body []byte) ErrorBody {
	if !isJSON(contentType) {
		text := strings.TrimSpace(string(body))
		if text == "" {
			return ErrorBody{Kind: BodyEmpty}
		}
		return ErrorBody{Kind: BodyPlainText, Text: text}
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return ErrorBody{Kind: BodyStructuredString, Text: strings.TrimSpace(s)}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		if json.Valid(body) {
			return ErrorBody{Kind: BodyNoDetail}
		}
		var v any
		cause := json.Unmarshal(body, &v)
		if cause == nil {
			cause = err
		}
		return ErrorBody{Kind: BodyUnparseable, Cause: cause}
	}

	detail, ok := obj["detail"]
	if !ok || string(bytes.TrimSpace(detail)) == "null" {
		return ErrorBody{Kind: BodyNoDetail}
	}

	if err := json.Unmarshal(detail, &s); err == nil {
		return ErrorBody{Kind: BodyDetailString, Text: s}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, detail); err != nil {
		return ErrorBody{Kind: BodyUnparseable, Cause: err}
	}
	return ErrorBody{Kind: BodyDetailOther, Text: compact.String()}
}

// isJSON reports whether a Content-Type declares a JSON payload.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(contentType)
	}
	return strings.Contains(mediaType, "json")
}
