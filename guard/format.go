package guard

import (
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// Optional sign, integral part, optional decimal part. No exponent,
	// no hex, no leading/trailing dot.
	numericStringRegex = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

	// E.164 international format with optional leading plus.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Full eight-group IPv6 form only.
	ipv6Regex = regexp.MustCompile(`^[0-9a-fA-F]{1,4}(:[0-9a-fA-F]{1,4}){7}$`)

	commaListRegex = regexp.MustCompile(`^[^,]+(,[^,]+)*$`)
	dotListRegex   = regexp.MustCompile(`^[^.]+(\.[^.]+)*$`)
)

// Numeric matches a genuine number (NaN excluded) or a string numeral in
// optional-sign, optional-decimal form, narrowed to float64. The string
// branch is deliberately stricter than strconv: scientific notation and
// malformed decimals are rejected structurally, and the parsed value
// must be finite.
var Numeric = New("numeric", func(v any, _ Helpers) (float64, bool) {
	if s, ok := v.(string); ok {
		if !numericStringRegex.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	f, ok := Number.Parse(v)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
})

// Email refines String with the address checks a typical web form needs:
// RFC 5322 parseable, a single local@domain pair, and a dotted domain
// with no empty labels.
var Email = Refine(String, "email", func(s string, _ Helpers) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", false
	}

	// ParseAddress also accepts display-name forms ("Alice <a@b.c>") and
	// would hand back the bare address. The input must be the address
	// itself, nothing around it.
	email := addr.Address
	if email != s {
		return "", false
	}
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "", false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return "", false
		}
	}

	return email, true
})

// Phone refines String to international phone numbers in E.164 format.
// Spaces and dashes are ignored for the check; the narrowed value keeps
// the original string.
var Phone = Refine(String, "phone", func(s string, _ Helpers) (string, bool) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	if len(cleaned) < 7 || !phoneRegex.MatchString(cleaned) {
		return "", false
	}
	return s, true
})

// UUID refines String to canonical 36-character UUID strings,
// case-insensitively. Length and hyphen positions are checked before the
// comparatively expensive parse.
var UUID = Refine(String, "uuid", func(s string, _ Helpers) (string, bool) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return "", false
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return s, true
})

// UUIDv4 refines UUID with a version nibble check.
var UUIDv4 = Refine(UUID, "uuidv4", func(s string, _ Helpers) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id.Version() != 4 {
		return "", false
	}
	return s, true
})

// IPv4 refines String to dotted-quad addresses with each octet in
// 0-255. Leading zeros are rejected.
var IPv4 = Refine(String, "ipv4", func(s string, _ Helpers) (string, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return "", false
	}
	for _, part := range parts {
		if part == "" || len(part) > 3 {
			return "", false
		}
		if len(part) > 1 && part[0] == '0' {
			return "", false
		}
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return "", false
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return "", false
		}
	}
	return s, true
})

// IPv6 refines String to the full eight-group form only. Compressed "::"
// notation is rejected; downstream consumers may depend on the narrower
// acceptance set.
var IPv6 = Refine(String, "ipv6", func(s string, _ Helpers) (string, bool) {
	if !ipv6Regex.MatchString(s) {
		return "", false
	}
	return s, true
})

// CommaSeparated refines String to one or more non-empty comma-delimited
// items.
var CommaSeparated = Refine(String, "comma-separated", func(s string, _ Helpers) (string, bool) {
	if !commaListRegex.MatchString(s) {
		return "", false
	}
	return s, true
})

// DotSeparated refines String to one or more non-empty period-delimited
// items.
var DotSeparated = Refine(String, "dot-separated", func(s string, _ Helpers) (string, bool) {
	if !dotListRegex.MatchString(s) {
		return "", false
	}
	return s, true
})
