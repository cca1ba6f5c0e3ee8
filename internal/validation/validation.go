package validation

import (
	"net/mail"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(strings.TrimSpace(username))
}

func envInt(key string, def, min int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min {
		return def
	}
	return n
}

func MaxCommentLength() int {
	return envInt("MAX_COMMENT_LENGTH", 2000, 1)
}

func MaxMessageLength() int {
	return envInt("MAX_MESSAGE_LENGTH", 4000, 1)
}

func MaxNameLength() int {
	return envInt("MAX_NAME_LENGTH", 80, 1)
}

func MaxTitleLength() int {
	return envInt("MAX_TITLE_LENGTH", 200, 1)
}

func TrimAndLimit(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
