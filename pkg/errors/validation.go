package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// idSuffixRegex matches characters that are safe inside an XML id and a url(#...) reference.
var idSuffixRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)

// ValidateIDSuffix validates the suffix appended to the ids of a badge's
// clip path and gradients. An empty suffix is valid.
func ValidateIDSuffix(suffix string) error {
	if len(suffix) > 64 {
		return New(ErrCodeInvalidInput, "id suffix too long (max 64 characters)")
	}
	if !idSuffixRegex.MatchString(suffix) {
		return New(ErrCodeInvalidInput, "id suffix %q may only contain letters, digits, '_', '.' and '-'", suffix)
	}
	return nil
}

// ValidateOutputName validates a batch entry name used as an output filename.
// It ensures the name is a simple basename without path components.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "output name cannot be empty")
	}

	if len(name) > 200 {
		return New(ErrCodeInvalidManifest, "output name too long (max 200 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidManifest, "output name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidManifest, "output name cannot be a hidden file")
	}

	return nil
}

// ValidateLinkURL validates a badge link target.
// Only http, https and fragment-relative links are accepted.
func ValidateLinkURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if strings.HasPrefix(rawURL, "#") {
		return nil
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
