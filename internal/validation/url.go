package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

type URLValidator struct {
	maxLength       int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(maxLength int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

// Normalize trims the input and prefixes https:// when it carries no scheme.
// Inputs with a blocked or explicit "scheme://" prefix are returned as-is so
// that ValidateURL reports them.
func (v *URLValidator) Normalize(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}

	if i := strings.Index(trimmed, ":"); i > 0 {
		if blockedProtocols[strings.ToLower(trimmed[:i])] || strings.HasPrefix(trimmed[i:], "://") {
			return trimmed
		}
	}

	return "https://" + trimmed
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] {
		return ErrInvalidURLFormat
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}

	return nil
}
