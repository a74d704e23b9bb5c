package forms

import (
	"net/url"
	"strings"
)

// Errors maps a field name to its human-readable validation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// isBlank reports whether a submitted value is empty once surrounding
// whitespace is stripped. A whitespace-only field fails the required check
// the same way a missing one does.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validDomain checks the dot-separated labels of a host name. Each label
// must be 1-63 characters of letters, digits or hyphens, without leading
// or trailing hyphens.
func validDomain(domain string, minLabels int) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < minLabels {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '-':
			default:
				return false
			}
		}
	}
	return true
}

// ValidEmail checks for a non-empty local part and a domain of at least
// two valid labels. Rejects "plainaddress", "missing@domain" and
// "@no-local.com".
func ValidEmail(addr string) bool {
	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	local := addr[:at]
	if strings.ContainsAny(local, " \t") {
		return false
	}
	return validDomain(addr[at+1:], 2)
}

// ValidURL requires a parseable absolute URL with an http(s)/ftp(s) scheme,
// a non-empty host and host labels of at most 63 characters each. Total
// URL length is not limited.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ftp", "ftps":
	default:
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	return validDomain(host, 1)
}
