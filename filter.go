package docsift

import "strings"

// DefaultArticlePrefixes returns the literal URL prefixes that identify
// canonical article pages across the help-center's subdomains.
func DefaultArticlePrefixes() []string {
	return []string{
		"https://help.moengage.com/hc/en-us/articles/",
		"https://developers.moengage.com/hc/en-us/articles/",
		"https://partners.moengage.com/hc/en-us/articles/",
	}
}

// FilterArticleURLs returns the ordered, deduplicated subset of links whose
// value starts with one of the allowlist prefixes. Matching is an exact
// string-prefix test: trailing slashes, query strings, and fragments are not
// normalized, so URLs differing only in those parts are distinct entries.
// An input containing only non-matching links yields an empty result.
func FilterArticleURLs(links []string, prefixes []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(links))

	for _, link := range links {
		if !hasAnyPrefix(link, prefixes) {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}

	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
