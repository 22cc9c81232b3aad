// Package images checks the optional image attached to an entry.
//
// An image is either a data URI ("data:image/png;base64,…") embedded in the
// entry itself or an http(s) URL. The zero Policy accepts any value.
package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
)

var (
	ErrTooLarge    = errors.New("image too large")
	ErrType        = errors.New("image type not allowed")
	ErrMalformed   = errors.New("malformed image")
	ErrUnsupported = errors.New("image must be a data URI or an http(s) URL")
)

// Policy limits embedded images. MaxBytes caps the decoded payload size and
// AllowedTypes lists accepted MIME types; zero values mean no limit.
type Policy struct {
	MaxBytes     int64
	AllowedTypes []string
}

func (p Policy) IsZero() bool { return p.MaxBytes == 0 && len(p.AllowedTypes) == 0 }

// Check validates image against the policy. An empty image is always valid.
func (p Policy) Check(image string) error {
	if image == "" || p.IsZero() {
		return nil
	}
	if strings.HasPrefix(image, "data:") {
		d, err := ParseDataURI(image)
		if err != nil {
			return err
		}
		if len(p.AllowedTypes) > 0 && !slices.Contains(p.AllowedTypes, d.MediaType) {
			return fmt.Errorf("%w: %s", ErrType, d.MediaType)
		}
		if p.MaxBytes > 0 && int64(len(d.Data)) > p.MaxBytes {
			return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(d.Data), p.MaxBytes)
		}
		return nil
	}
	if isHTTPURL(image) {
		return nil
	}
	return ErrUnsupported
}

// DataURI is a decoded RFC 2397 data URI.
type DataURI struct {
	MediaType string
	Data      []byte
}

func ParseDataURI(s string) (DataURI, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing data: prefix", ErrMalformed)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, fmt.Errorf("%w: missing payload separator", ErrMalformed)
	}

	params := strings.Split(meta, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	if mediaType == "" {
		mediaType = "text/plain"
	}
	isBase64 := slices.Contains(params[1:], "base64")

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return DataURI{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return DataURI{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		data = []byte(unescaped)
	}
	return DataURI{MediaType: mediaType, Data: data}, nil
}

// EncodeDataURI builds a base64 data URI, sniffing the media type from the
// content.
func EncodeDataURI(data []byte) string {
	mediaType, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromFile reads an image file into a data URI.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return EncodeDataURI(data), nil
}

// Describe renders a short human description of image for listings.
func Describe(image string) string {
	switch {
	case image == "":
		return "none"
	case strings.HasPrefix(image, "data:"):
		d, err := ParseDataURI(image)
		if err != nil {
			return "embedded (unreadable)"
		}
		return fmt.Sprintf("embedded %s, %s", d.MediaType, humanSize(len(d.Data)))
	default:
		return image
	}
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
