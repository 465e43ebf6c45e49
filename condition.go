package httpcompress

import (
	"strings"

	"github.com/arloliu/httpcompress/response"
)

// DefaultMinSize is a reasonable lower bound for compressible bodies: below
// this, container overhead tends to cancel out the savings.
const DefaultMinSize = 512

// MinSize returns a condition accepting responses whose body is at least n
// bytes long.
//
// Responses whose length is unknown (streamed bodies without a
// Content-Length) pass: a stream is assumed large enough to benefit.
func MinSize(n int64) Condition {
	return func(resp *response.Response) bool {
		length, known := resp.ContentLength()
		if !known {
			return true
		}

		return length >= n
	}
}

// ContentTypes returns a condition accepting only responses whose media type
// matches one of the given patterns. A pattern ending in "/" matches as a
// prefix ("text/" matches "text/html"); any other pattern matches exactly.
//
// Responses without a parseable Content-Type are rejected: the type is
// required to establish eligibility.
func ContentTypes(types ...string) Condition {
	patterns := lowered(types)

	return func(resp *response.Response) bool {
		ct := resp.ContentType()
		if ct == "" {
			return false
		}

		return matchesAny(ct, patterns)
	}
}

// ExcludeContentTypes returns a condition rejecting responses whose media
// type matches one of the given patterns, with the same pattern syntax as
// ContentTypes.
//
// Responses without a parseable Content-Type pass: an unknown type is not on
// the deny list.
func ExcludeContentTypes(types ...string) Condition {
	patterns := lowered(types)

	return func(resp *response.Response) bool {
		ct := resp.ContentType()
		if ct == "" {
			return true
		}

		return !matchesAny(ct, patterns)
	}
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}

	return out
}

func matchesAny(mediaType string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(mediaType, p) {
				return true
			}

			continue
		}
		if mediaType == p {
			return true
		}
	}

	return false
}
