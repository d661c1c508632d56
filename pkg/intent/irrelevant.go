package intent

import "strings"

// irrelevantKeywords flag out-of-domain questions (general trivia, weather,
// unrelated commerce). The check runs before the trained model and has
// absolute priority.
var irrelevantKeywords = []string{
	"capital", "president", "weather", "history", "who is", "define", "translate",
	"joke", "fun fact", "news", "sports", "movie", "music", "random fact", "science",
	"adopt", "dragon", "dog", "pet", "spaceship", "crypto", "rent", "flight", "food", "pizza",
}

// IsIrrelevant reports whether the normalized message contains any
// out-of-domain keyword.
func IsIrrelevant(normalized string) bool {
	for _, kw := range irrelevantKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
