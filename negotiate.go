package httpcompress

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the Accept-Encoding token matching every registered encoder not
// otherwise named by the client.
const Wildcard = "*"

// AcceptedEncoding is one parsed token from an Accept-Encoding header value.
type AcceptedEncoding struct {
	// Name is the lowercased content-coding token, or "*".
	Name string
	// Quality is the client preference weight in [0, 1]. Absent q defaults
	// to 1.0 (fully acceptable); 0 means explicit rejection.
	Quality float64
	// Order is the token's position in the original header value. Negotiate
	// uses it as the final tie-break when quality and priority are equal.
	Order int
}

// ParseAcceptEncoding parses an Accept-Encoding header value into its ordered
// tokens per the standard weighted-list syntax.
//
// Parsing is best-effort and never fails: tokens with malformed or negative
// q-values are dropped, q-values above 1 are clamped to 1, and empty list
// members are skipped. Tokens with q=0 are kept so that callers can treat
// them as explicit rejections.
func ParseAcceptEncoding(header string) []AcceptedEncoding {
	if header == "" {
		return nil
	}

	var accepted []AcceptedEncoding
	for _, part := range strings.Split(header, ",") {
		name, params, hasParams := strings.Cut(part, ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		quality := 1.0
		if hasParams {
			q, ok := parseQuality(params)
			if !ok {
				continue
			}
			quality = q
		}

		accepted = append(accepted, AcceptedEncoding{
			Name:    name,
			Quality: quality,
			Order:   len(accepted),
		})
	}

	return accepted
}

// parseQuality extracts the q parameter from a token's parameter list.
// Returns 1.0 when no q parameter is present, and ok=false when a q parameter
// exists but does not parse as a quality value.
func parseQuality(params string) (float64, bool) {
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(param, "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}

		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q < 0 {
			return 0, false
		}
		if q > 1 {
			q = 1
		}

		return q, true
	}

	return 1.0, true
}

// candidate pairs an encoder config with the client quality and header
// position of the token that admitted it.
type candidate struct {
	cfg     *EncoderConfig
	quality float64
	order   int
}

// Negotiate produces the priority-ordered candidate encoders for the given
// Accept-Encoding header value.
//
// An absent header yields no candidates: the response must pass through
// unmodified. Tokens with q=0 are excluded (explicit client rejection),
// unknown tokens are silently dropped, and "*" expands to every registered
// encoder the client did not name explicitly.
//
// Candidates are ordered by client quality descending, then by configured
// encoder priority descending, then by the admitting token's position in the
// header: server priority only breaks ties between equally preferred client
// weights. Candidates expanded from the same wildcard keep the registry's
// registration order.
func (p *Policy) Negotiate(acceptEncoding string) []*EncoderConfig {
	if acceptEncoding == "" {
		return nil
	}

	accepted := ParseAcceptEncoding(acceptEncoding)
	if len(accepted) == 0 {
		return nil
	}

	named := make(map[string]bool, len(accepted))
	for _, ae := range accepted {
		if ae.Name != Wildcard {
			named[ae.Name] = true
		}
	}

	var candidates []candidate
	for _, ae := range accepted {
		if ae.Quality == 0 {
			continue
		}

		if ae.Name == Wildcard {
			for _, cfg := range p.encoders {
				if !named[cfg.name] {
					candidates = append(candidates, candidate{cfg: cfg, quality: ae.Quality, order: ae.Order})
				}
			}

			continue
		}

		if cfg, ok := p.byName[ae.Name]; ok {
			candidates = append(candidates, candidate{cfg: cfg, quality: ae.Quality, order: ae.Order})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(b.quality, a.quality); c != 0 {
			return c
		}
		if c := cmp.Compare(b.cfg.priority, a.cfg.priority); c != 0 {
			return c
		}

		// Final tie-break: the token's position in the header. Candidates
		// expanded from the same wildcard share a position; the stable sort
		// keeps them in registration order.
		return cmp.Compare(a.order, b.order)
	})

	result := make([]*EncoderConfig, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.cfg)
	}

	return result
}
