package fortune

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyReply indicates the backend returned no content.
	ErrEmptyReply = errors.New("empty backend reply")

	// ErrMalformedReply indicates the reply was not a JSON object carrying
	// all three string fields.
	ErrMalformedReply = errors.New("malformed backend reply")
)

// Reply is the structured object the backend is asked to produce.
type Reply struct {
	BigCharacter     string
	LuckyPoem        string
	FinancialInsight string
}

// ParseReply decodes a backend reply. Anything other than a JSON object with
// string values for big_character, lucky_poem and financial_insight is
// rejected as a whole.
func ParseReply(content string) (Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Reply{}, ErrEmptyReply
	}

	var raw struct {
		BigCharacter     *string `json:"big_character"`
		LuckyPoem        *string `json:"lucky_poem"`
		FinancialInsight *string `json:"financial_insight"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	var missing []string
	if raw.BigCharacter == nil {
		missing = append(missing, "big_character")
	}
	if raw.LuckyPoem == nil {
		missing = append(missing, "lucky_poem")
	}
	if raw.FinancialInsight == nil {
		missing = append(missing, "financial_insight")
	}
	if len(missing) > 0 {
		return Reply{}, fmt.Errorf("%w: missing %s", ErrMalformedReply, strings.Join(missing, ", "))
	}

	return Reply{
		BigCharacter:     *raw.BigCharacter,
		LuckyPoem:        *raw.LuckyPoem,
		FinancialInsight: *raw.FinancialInsight,
	}, nil
}

// poemBreaks are the line and sentence markers a poem is split on.
const poemBreaks = "\r\n，。,.；;！!？?/|"

// SplitPoem splits a poem into trimmed, non-empty lines.
func SplitPoem(poem string) []string {
	parts := strings.FieldsFunc(poem, func(r rune) bool {
		return strings.ContainsRune(poemBreaks, r)
	})
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// JoinPoem joins four lines as two couplets: "一，二。三，四。".
func JoinPoem(lines []string) string {
	var sb strings.Builder
	for i, l := range lines {
		sb.WriteString(l)
		if i%2 == 0 {
			sb.WriteString("，")
		} else {
			sb.WriteString("。")
		}
	}
	return sb.String()
}

// RenderInsight fills the scenario's insight template.
func RenderInsight(s Scenario, req Request, highlights []string) string {
	return strings.NewReplacer(
		"{company}", req.Company,
		"{highlights}", strings.Join(highlights, "、"),
		"{name}", req.Name,
		"{wish}", s.Label,
	).Replace(s.InsightTemplate)
}

// repair enforces the scenario's rules on a parsed reply. Only the fields
// that violate them are replaced; the insight is always regenerated.
func repair(reply Reply, s Scenario, req Request, highlights []string, p Picker) (Result, []string) {
	var repaired []string

	char := strings.TrimSpace(reply.BigCharacter)
	if !s.AllowsCharacter(char) {
		char = pick(p, s.AllowedCharacters)
		repaired = append(repaired, "big_character")
	}

	var poem string
	if lines := SplitPoem(reply.LuckyPoem); len(lines) == 4 {
		poem = JoinPoem(lines)
	} else {
		poem = pick(p, s.PoemTemplates)
		repaired = append(repaired, "lucky_poem")
	}

	return Result{
		BigCharacter:     char,
		LuckyPoem:        poem,
		FinancialInsight: RenderInsight(s, req, highlights),
		Scenario:         s.ID,
		Header:           s.Header,
		Source:           SourceAI,
		Repaired:         repaired,
	}, repaired
}
