package util

import (
	"errors"
	"strings"
)

// SanitizeFileName reduces a client-supplied upload name to a bare file name
// that is safe to echo back in results and logs. Some browsers send the full
// client-side path; only the last element is kept.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, "/\\"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
