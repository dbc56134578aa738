package markdown

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{8,}\d`)
	urlRe   = regexp.MustCompile(`https?://[^\s)]+`)
)

// ExtractContacts harvests contact tokens from a raw (uncleaned) line.
// The three patterns run independently over the same text; matches are
// returned emails first, then phone numbers, then URLs, each category in
// first-seen order, deduplicated within the call. Running the extraction
// over an already-extracted token returns that token unchanged, which
// keeps the operation idempotent.
func ExtractContacts(line string) []string {
	var tokens []string
	seen := make(map[string]bool)

	add := func(token string) {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	for _, m := range emailRe.FindAllString(line, -1) {
		add(m)
	}

	// Phone matching runs over the line with emails and URLs blanked out
	// so digit runs inside those tokens are not re-reported as phones.
	stripped := emailRe.ReplaceAllString(line, " ")
	stripped = urlRe.ReplaceAllString(stripped, " ")
	for _, m := range phoneRe.FindAllString(stripped, -1) {
		add(cleanPhoneToken(m))
	}

	for _, m := range urlRe.FindAllString(line, -1) {
		add(strings.Trim(m, "()"))
	}

	return tokens
}

// cleanPhoneToken trims stray punctuation from a phone match without
// unbalancing its parentheses, so "(555) 123-4567" keeps its area-code
// parens while a dangling "(" or ")" picked up from surrounding text is
// dropped.
func cleanPhoneToken(token string) string {
	token = strings.Trim(token, " -.")
	for strings.HasPrefix(token, "(") && !strings.Contains(token[1:], ")") {
		token = strings.Trim(token[1:], " -.")
	}
	for strings.HasSuffix(token, ")") && !strings.Contains(token[:len(token)-1], "(") {
		token = strings.Trim(token[:len(token)-1], " -.")
	}
	return token
}
