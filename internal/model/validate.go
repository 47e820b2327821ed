package model

import (
	"net/url"
	"strings"
	"time"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}
var videoExtensions = []string{".mp4", ".webm", ".mov", ".m4v"}

// IsHTTPURL reports whether raw parses as an http(s) URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsDataURL reports whether raw is an embedded data URL.
func IsDataURL(raw string) bool {
	return strings.HasPrefix(raw, "data:")
}

// IsValidImageURL reports whether raw is an http(s) URL whose path ends
// in a known image extension.
func IsValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	pathname := strings.ToLower(u.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(pathname, ext) {
			return true
		}
	}
	return false
}

// IsVideoURL reports whether raw is an http(s) URL whose path ends in a
// known video extension.
func IsVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	pathname := strings.ToLower(u.Path)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(pathname, ext) {
			return true
		}
	}
	return false
}

// InferMediaType guesses the media classification from a MIME type and URL.
// Returns an empty string when nothing can be inferred.
func InferMediaType(rawURL, mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"), strings.HasPrefix(rawURL, "data:video/"):
		return MediaVideo
	case strings.HasPrefix(mimeType, "image/"), strings.HasPrefix(rawURL, "data:image/"):
		return MediaImage
	case IsVideoURL(rawURL):
		return MediaVideo
	case IsValidImageURL(rawURL):
		return MediaImage
	}
	return ""
}

// FormatDate renders an epoch-millisecond timestamp for display.
func FormatDate(millis int64) string {
	return time.UnixMilli(millis).Format("Jan 2, 2006")
}
