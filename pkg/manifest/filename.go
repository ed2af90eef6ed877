package manifest

import (
	"fmt"
	"net/url"
	"strings"
)

// FilenameFromURL returns the last non-empty segment of the URL's path.
// The segment is returned in its escaped form, so "%2F" is not a separator.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoFilename, err)
	}

	segments := strings.Split(u.EscapedPath(), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoFilename, redactURL(rawURL))
}
