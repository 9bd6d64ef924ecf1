package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/lshigami/Percula/internal/apperr"
)

// ParseOutcome tags how a completion was decoded: strictly, through fallback
// extraction, or not at all.
type ParseOutcome int

const (
	ParseOutcomeStrict ParseOutcome = iota
	ParseOutcomeRecovered
	ParseOutcomeFailed
)

var (
	fenceRe        = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	questionTextRe = regexp.MustCompile(`"question_text"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	answerTextRe   = regexp.MustCompile(`"answer_text"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	headlineRe     = regexp.MustCompile(`"headline"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	summaryRe      = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// decodeCompletion parses a model completion into v. It tries a strict JSON
// parse first, then strips Markdown code fences, then falls back to the
// outermost brace/bracket block (models like wrapping JSON in prose). The
// caller decides whether a recovered parse is acceptable.
func decodeCompletion(raw string, v any) (ParseOutcome, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParseOutcomeFailed, apperr.New(apperr.KindUpstream, "model returned no content")
	}

	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return ParseOutcomeStrict, nil
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(m[1]), v); err == nil {
			return ParseOutcomeRecovered, nil
		}
	}

	if block := outermostJSONBlock(trimmed); block != "" {
		if err := json.Unmarshal([]byte(block), v); err == nil {
			return ParseOutcomeRecovered, nil
		}
	}

	return ParseOutcomeFailed, apperr.New(apperr.KindUpstream, "model output could not be parsed as JSON")
}

// outermostJSONBlock returns the substring from the first opening brace or
// bracket to the matching last closer, or "" when none exists.
func outermostJSONBlock(s string) string {
	start := -1
	var closer byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start, closer = i, '}'
			break
		}
		if s[i] == '[' {
			start, closer = i, ']'
			break
		}
	}
	if start == -1 {
		return ""
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}

// recoverStringFields extracts every value of a quoted JSON string field
// matched by re, unescaping each one. Used as the last resort when the
// completion is too mangled to parse as a document.
func recoverStringFields(raw string, re *regexp.Regexp) []string {
	matches := re.FindAllStringSubmatch(raw, -1)
	var out []string
	for _, m := range matches {
		var s string
		if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
