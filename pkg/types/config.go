// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// DefaultServer is the conversion service base URL used when none is configured.
	DefaultServer = "http://127.0.0.1:8000"

	// DefaultEndpoint is the conversion route on the service.
	DefaultEndpoint = "/api/v1/files/xbrl-to-excel"

	// DefaultMaxFileSize is the largest document accepted for upload (15 MiB).
	DefaultMaxFileSize int64 = 15 * 1024 * 1024

	// DefaultFPS is the trail animation frame rate.
	DefaultFPS = 60
)

var endpointPattern = regexp.MustCompile(`^/\S*$`)

// HTTPConfig holds shared HTTP settings used by commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "filing-converter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// Validate checks the HTTP settings.
func (c HTTPConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.UserAgent, validation.Required),
	)
}

// ConverterConfig holds settings for the upload/convert workflow.
type ConverterConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Server is the base URL of the conversion service.
	Server string `json:"server" yaml:"server" mapstructure:"server"`

	// Endpoint is the conversion route appended to Server.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// OutputDir is where converted workbooks are saved.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// MaxFileSize is the upload size ceiling in bytes (default 15 MiB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size" mapstructure:"max_file_size"`
}

// URL returns the full conversion endpoint URL.
func (c ConverterConfig) URL() string {
	return c.Server + c.Endpoint
}

// Validate checks the converter settings.
func (c ConverterConfig) Validate() error {
	if err := c.HTTPConfig.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.Required, is.URL),
		validation.Field(&c.Endpoint, validation.Required, validation.Match(endpointPattern)),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.MaxFileSize, validation.Required, validation.Min(int64(1))),
	)
}

// TrailConfig holds settings for the trail animation.
type TrailConfig struct {
	// FPS is the number of animation frames per second.
	FPS int `json:"fps" yaml:"fps" mapstructure:"fps"`
}

// FrameInterval returns the duration of one animation frame.
func (c TrailConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Validate checks the trail settings.
func (c TrailConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FPS, validation.Required, validation.Min(1), validation.Max(240)),
	)
}
