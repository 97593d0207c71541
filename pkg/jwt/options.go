package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidExpiry = errors.New("jwt: token expiry must be a positive duration")

// ParseDuration reads a token lifetime. Besides time.ParseDuration units it
// accepts whole days ("7d").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	var (
		d   time.Duration
		err error
	)

	if days, ok := strings.CutSuffix(s, "d"); ok {
		var n int
		n, err = strconv.Atoi(days)
		d = time.Duration(n) * 24 * time.Hour
	} else {
		d, err = time.ParseDuration(s)
	}

	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, s)
	}

	return d, nil
}
