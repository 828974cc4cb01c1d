package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmail returns true if the given string appears to be an e-mail address
func IsEmail(str string) bool {
	str = strings.TrimSpace(str)
	if str == "" {
		return false
	}
	return emailPattern.MatchString(str)
}
