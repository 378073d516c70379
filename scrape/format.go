package scrape

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(url) <= maxLen {
		return url
	}
	// No room for the "..." marker, keep the bare tail.
	if maxLen < 4 {
		return url[len(url)-maxLen:]
	}
	return "..." + url[len(url)-maxLen+3:]
}
