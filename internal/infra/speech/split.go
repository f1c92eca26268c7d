package speech

import "strings"

// MaxChunkChars is the longest text the Translate TTS endpoint accepts per request.
const MaxChunkChars = 100

// SplitText packs whitespace-separated words into chunks of at most limit
// characters. Words longer than limit are cut.
func SplitText(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxChunkChars
	}

	var (
		chunks  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)

		for len(w) > limit {
			flush()
			chunks = append(chunks, string(w[:limit]))
			w = w[limit:]
		}
		if len(w) == 0 {
			continue
		}

		if len(current) > 0 && len(current)+1+len(w) > limit {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	flush()

	return chunks
}
