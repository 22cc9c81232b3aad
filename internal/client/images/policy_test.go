package images

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngBytes, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func TestPolicy_ZeroAcceptsAnything(t *testing.T) {
	var p Policy
	for _, img := range []string{"", "data:image/png;base64,@@@", "whatever", strings.Repeat("x", 1<<20)} {
		assert.NoError(t, p.Check(img))
	}
}

func TestPolicy_Check(t *testing.T) {
	png := EncodeDataURI(pngBytes)
	p := Policy{MaxBytes: 100, AllowedTypes: []string{"image/png", "image/jpeg"}}

	tests := []struct {
		name    string
		image   string
		wantErr error
	}{
		{name: "empty", image: ""},
		{name: "small png", image: png},
		{name: "https url", image: "https://images.unsplash.com/photo-1?w=800"},
		{name: "gif not allowed", image: "data:image/gif;base64,R0lGODlh", wantErr: ErrType},
		{name: "too large", image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, 101)), wantErr: ErrTooLarge},
		{name: "bad base64", image: "data:image/png;base64,@@@", wantErr: ErrMalformed},
		{name: "no comma", image: "data:image/png;base64", wantErr: ErrMalformed},
		{name: "plain path", image: "/tmp/cat.png", wantErr: ErrUnsupported},
		{name: "ftp url", image: "ftp://host/cat.png", wantErr: ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(tt.image)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPolicy_SizeOnly(t *testing.T) {
	p := Policy{MaxBytes: 4}
	assert.NoError(t, p.Check("data:text/plain,abcd"))
	assert.ErrorIs(t, p.Check("data:text/plain,abcde"), ErrTooLarge)
}

func TestParseDataURI(t *testing.T) {
	d, err := ParseDataURI("data:,hello%20world")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", d.MediaType)
	assert.Equal(t, []byte("hello world"), d.Data)

	d, err = ParseDataURI(EncodeDataURI(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "image/png", d.MediaType)
	assert.Equal(t, pngBytes, d.Data)
}

func TestFromFileAndDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o600))

	uri, err := FromFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Contains(t, Describe(uri), "embedded image/png")

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	assert.Equal(t, "none", Describe(""))
	assert.Equal(t, "https://x.test/a.jpg", Describe("https://x.test/a.jpg"))
	assert.Equal(t, "2.0 KB", humanSize(2048))
}
