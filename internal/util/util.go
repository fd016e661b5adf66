package util

import (
	"crypto/rand"
	"encoding/binary"
	"net"
	"net/url"
	"regexp"
	"strings"
)

const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const MaxShortCodeLen = 128

var shortCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateURL accepts absolute http and https URLs with a host.
func ValidateURL(raw string) bool {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func ValidShortCode(code string) bool {
	return len(code) >= 1 && len(code) <= MaxShortCodeLen && shortCodePattern.MatchString(code)
}

// Base62 encode of an integer
func base62Encode(num uint64) string {
	if num == 0 {
		return "0"
	}
	b := make([]byte, 0, 11)
	for num > 0 {
		b = append(b, base62Chars[num%62])
		num /= 62
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// RandomShortCode returns length base62 characters drawn from crypto/rand.
func RandomShortCode(length int) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 8)
	for sb.Len() < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		sb.WriteString(base62Encode(binary.BigEndian.Uint64(buf)))
	}
	return sb.String()[:length], nil
}

// RandomToken returns a 32 character base62 token.
func RandomToken() (string, error) {
	return RandomShortCode(32)
}

// NormalizeHost lower-cases a Host header value and strips any port.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(strings.ToLower(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(host, ".")
}

var hostnamePattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

// ValidHostname accepts lower-case dotted DNS names such as go.example.com.
func ValidHostname(host string) bool {
	return len(host) <= 253 && hostnamePattern.MatchString(host)
}
