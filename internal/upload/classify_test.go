// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyErrorBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantKind    ErrorBodyKind
		wantText    string
	}{
		{"plain text", "text/plain", "internal error", BodyPlainText, "internal error"},
		{"html is plain text", "text/html", "<h1>Bad Gateway</h1>", BodyPlainText, "<h1>Bad Gateway</h1>"},
		{"missing content type", "", " oops ", BodyPlainText, "oops"},
		{"blank text", "text/plain", " \n\t", BodyEmpty, ""},
		{"json detail string", "application/json", `{"detail":"bad taxonomy"}`, BodyDetailString, "bad taxonomy"},
		{"json with charset", "application/json; charset=utf-8", `{"detail":"x"}`, BodyDetailString, "x"},
		{"problem json", "application/problem+json", `{"detail":"quota"}`, BodyDetailString, "quota"},
		{"bare string", "application/json", `"  trimmed  "`, BodyStructuredString, "trimmed"},
		{"detail object", "application/json", `{"detail":{"code":7,"why":"no facts"}}`, BodyDetailOther, `{"code":7,"why":"no facts"}`},
		{"detail number", "application/json", `{"detail":42}`, BodyDetailOther, "42"},
		{"detail null", "application/json", `{"detail":null}`, BodyNoDetail, ""},
		{"no detail", "application/json", `{"message":"x"}`, BodyNoDetail, ""},
		{"json array", "application/json", `[1,2]`, BodyNoDetail, ""},
		{"malformed", "application/json", `{"detail":`, BodyUnparseable, ""},
		{"empty json body", "application/json", ``, BodyUnparseable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyErrorBody(tt.contentType, []byte(tt.body))
			assert.Equal(t, tt.wantKind, got.Kind, "kind %s", got.Kind)
			assert.Equal(t, tt.wantText, got.Text)
			if tt.wantKind == BodyUnparseable {
				assert.Error(t, got.Cause)
			} else {
				assert.NoError(t, got.Cause)
			}
		})
	}
}

func TestErrorBody_Message(t *testing.T) {
	assert.Equal(t, "bad taxonomy", ErrorBody{Kind: BodyDetailString, Text: "bad taxonomy"}.Message(422))
	assert.Equal(t, "Failed to convert XBRL file (status 422)", ErrorBody{Kind: BodyDetailString}.Message(422))
	assert.Equal(t, "Failed to convert XBRL file (status 500)", ErrorBody{Kind: BodyUnparseable}.Message(500))
}

func TestErrorBodyKind_String(t *testing.T) {
	assert.Equal(t, "detail-string", BodyDetailString.String())
	assert.Equal(t, "ErrorBodyKind(99)", ErrorBodyKind(99).String())
}
