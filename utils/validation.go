package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the general shape of an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateImageURLs checks that every entry is an absolute http(s) URL.
func ValidateImageURLs(images []string) bool {
	for _, raw := range images {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false
		}
		if u.Host == "" {
			return false
		}
	}
	return true
}
