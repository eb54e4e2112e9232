// Package comeback holds the pure parts of reply generation: the moderation
// gate, prompt construction, parsing of model output and canned fallbacks.
package comeback

import "regexp"

// inappropriatePatterns is a coarse denylist, not a safety system.
var inappropriatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(kill|murder|violence|threat)\b`),
	regexp.MustCompile(`(?i)\b(nsfw|explicit)\b`),
}

// IsAppropriate reports whether text passes the denylist.
func IsAppropriate(text string) bool {
	for _, pattern := range inappropriatePatterns {
		if pattern.MatchString(text) {
			return false
		}
	}
	return true
}
