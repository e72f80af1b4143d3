package gen

import (
	"regexp"
	"strings"
)

// Section markers the model is instructed to emit. The splitter and the
// prompt template must agree on these exactly.
const (
	MarkerFacebook  = "### Facebook Post ###"
	MarkerX         = "### X (Twitter) Post ###"
	MarkerInstagram = "### Instagram Post ###"
)

const (
	// FallbackPrefix opens the facebook field when no marker matched.
	FallbackPrefix = "Warning: Could not parse response into sections. The AI generated content might not be in the expected format.\n\nRaw AI Response:\n"
	// ParseFailedSentinel fills the x and instagram fields in that case.
	ParseFailedSentinel = "N/A (Parsing failed)"
)

var (
	reFacebook  = regexp.MustCompile(`### Facebook Post ###\s*([\s\S]*?)(?:\s*### X \(Twitter\) Post ###|$)`)
	reX         = regexp.MustCompile(`### X \(Twitter\) Post ###\s*([\s\S]*?)(?:\s*### Instagram Post ###|$)`)
	reInstagram = regexp.MustCompile(`### Instagram Post ###\s*([\s\S]*)$`)
)

type Sections struct {
	Facebook  string
	X         string
	Instagram string
}

// SplitSections extracts the three platform sections from raw model
// text. Each capture runs from its marker up to the next marker (or end
// of text) and is trimmed. When nothing matches but raw is non-empty,
// the whole text lands in Facebook behind FallbackPrefix and the other
// two fields carry ParseFailedSentinel. Empty raw is the caller's
// problem.
func SplitSections(raw string) Sections {
	s := Sections{
		Facebook:  capture(reFacebook, raw),
		X:         capture(reX, raw),
		Instagram: capture(reInstagram, raw),
	}
	if s.Facebook == "" && s.X == "" && s.Instagram == "" && strings.TrimSpace(raw) != "" {
		s.Facebook = FallbackPrefix + strings.TrimSpace(raw)
		s.X = ParseFailedSentinel
		s.Instagram = ParseFailedSentinel
	}
	return s
}

func capture(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
