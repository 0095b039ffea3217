package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLs_Templates(t *testing.T) {
	u := NewURLs("")

	assert.Equal(t, "https://drive.google.com/thumbnail?id=ID1&sz=w1200", u.ThumbnailURL("ID1"))
	assert.Equal(t, "https://drive.google.com/file/d/ID1/view", u.ViewURL("ID1"))
}

func TestURLs_CustomHost(t *testing.T) {
	u := NewURLs("https://drive.example.test/")

	assert.Equal(t, "drive.example.test", u.Host)
	assert.Equal(t, "https://drive.example.test/file/d/abc_-9/view", u.ViewURL("abc_-9"))
}

func TestURLs_ZeroValueUsesDefaultHost(t *testing.T) {
	var u URLs
	assert.Equal(t, "https://drive.google.com/thumbnail?id=x&sz=w1200", u.ThumbnailURL("x"))
}

func TestURLs_EscapesIdentifier(t *testing.T) {
	u := NewURLs("")

	assert.Equal(t, "https://drive.google.com/thumbnail?id=a%26b&sz=w1200", u.ThumbnailURL("a&b"))
	assert.Equal(t, "https://drive.google.com/file/d/a%2Fb/view", u.ViewURL("a/b"))
}

func TestFileID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain id", "1AbC_def-GHI", "1AbC_def-GHI"},
		{"plain id kept verbatim", "  1AbC  ", "  1AbC  "},
		{"blank id kept", "   ", "   "},
		{"padded link", "  https://drive.google.com/open?id=1AbC_def ", "1AbC_def"},
		{"view link", "https://drive.google.com/file/d/1AbC_def/view?usp=sharing", "1AbC_def"},
		{"multi-account link", "https://drive.google.com/file/u/0/d/1AbC_def/view", "1AbC_def"},
		{"open link", "https://drive.google.com/open?id=1AbC_def", "1AbC_def"},
		{"uc link", "https://docs.google.com/uc?id=1AbC_def&export=download", "1AbC_def"},
		{"foreign host untouched", "https://example.com/file/d/1AbC/view", "https://example.com/file/d/1AbC/view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileID(tt.value))
		})
	}
}
