// Package drive builds Google Drive links for files referenced by the Drive index.
package drive

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	DefaultHost   = "drive.google.com"
	ThumbnailSize = "w1200"
)

var fileIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// URLs builds thumbnail and viewer links against a Drive host
type URLs struct {
	Host string
}

// NewURLs creates a URL builder; an empty host falls back to drive.google.com
func NewURLs(host string) URLs {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	if host == "" {
		host = DefaultHost
	}
	return URLs{Host: host}
}

func (u URLs) host() string {
	if u.Host == "" {
		return DefaultHost
	}
	return u.Host
}

// ThumbnailURL returns the 1200px wide thumbnail link for a file
func (u URLs) ThumbnailURL(fileID string) string {
	return fmt.Sprintf("https://%s/thumbnail?id=%s&sz=%s", u.host(), url.QueryEscape(fileID), ThumbnailSize)
}

// ViewURL returns the full-resolution viewer link for a file
func (u URLs) ViewURL(fileID string) string {
	return fmt.Sprintf("https://%s/file/d/%s/view", u.host(), url.PathEscape(fileID))
}

// FileID extracts the file ID when value is a Drive share link
// (/file/d/{id}/..., /open?id={id}, /uc?id={id}). Anything else is returned as is.
func FileID(value string) string {
	link := strings.TrimSpace(value)
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return value
	}

	parsed, err := url.Parse(link)
	if err != nil || !isDriveHost(parsed.Host) {
		return value
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "d" && fileIDPattern.MatchString(parts[i+1]) {
			return parts[i+1]
		}
	}

	if id := parsed.Query().Get("id"); fileIDPattern.MatchString(id) {
		return id
	}

	return value
}

func isDriveHost(host string) bool {
	host = strings.ToLower(host)
	for _, valid := range []string{"drive.google.com", "docs.google.com"} {
		if host == valid || strings.HasSuffix(host, "."+valid) {
			return true
		}
	}
	return false
}
