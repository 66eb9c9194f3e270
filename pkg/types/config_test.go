// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConverterConfig() ConverterConfig {
	return ConverterConfig{
		HTTPConfig:  HTTPConfig{Timeout: time.Minute, UserAgent: "filing-converter/0.1"},
		Server:      DefaultServer,
		Endpoint:    DefaultEndpoint,
		OutputDir:   "output",
		MaxFileSize: DefaultMaxFileSize,
	}
}

func TestConverterConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConverterConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ConverterConfig) {}},
		{name: "missing server", mutate: func(c *ConverterConfig) { c.Server = "" }, wantErr: "server"},
		{name: "server not a url", mutate: func(c *ConverterConfig) { c.Server = "not a url" }, wantErr: "server"},
		{name: "endpoint without slash", mutate: func(c *ConverterConfig) { c.Endpoint = "api/v1" }, wantErr: "endpoint"},
		{name: "missing output dir", mutate: func(c *ConverterConfig) { c.OutputDir = "" }, wantErr: "output_dir"},
		{name: "negative size", mutate: func(c *ConverterConfig) { c.MaxFileSize = -1 }, wantErr: "max_file_size"},
		{name: "missing user agent", mutate: func(c *ConverterConfig) { c.UserAgent = "" }, wantErr: "user_agent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConverterConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConverterConfig_URL(t *testing.T) {
	cfg := validConverterConfig()
	assert.Equal(t, "http://127.0.0.1:8000/api/v1/files/xbrl-to-excel", cfg.URL())
}

func TestTrailConfig(t *testing.T) {
	assert.NoError(t, TrailConfig{FPS: 60}.Validate())
	assert.Error(t, TrailConfig{FPS: 0}.Validate())
	assert.Error(t, TrailConfig{FPS: 1000}.Validate())
	assert.Equal(t, 20*time.Millisecond, TrailConfig{FPS: 50}.FrameInterval())
}

func TestUploadError(t *testing.T) {
	var err error = &UploadError{Message: "bad taxonomy", Details: "HTTP 422"}
	assert.EqualError(t, err, "bad taxonomy")
	assert.Equal(t, "uploading", StateUploading.String())
}
