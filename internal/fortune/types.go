package fortune

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameRunes bounds the requester name embedded in prompts and insights.
	MaxNameRunes = 8

	// MaxCompanyRunes bounds the free-text company field.
	MaxCompanyRunes = 64

	// anonymousName stands in for a blank name.
	anonymousName = "有缘人"

	// anonymousCompany stands in for a blank company.
	anonymousCompany = "目标公司"
)

// Source records which path produced a Result.
type Source string

const (
	SourceAI       Source = "ai"
	SourceTemplate Source = "template"
)

// Request is one user submission.
type Request struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	WishID  string `json:"wishId"`
}

// Normalized returns a copy with whitespace trimmed, length bounds applied
// and blank fields replaced with neutral stand-ins.
func (r Request) Normalized() Request {
	out := Request{
		Name:    truncateRunes(strings.TrimSpace(r.Name), MaxNameRunes),
		Company: truncateRunes(strings.TrimSpace(r.Company), MaxCompanyRunes),
		WishID:  strings.ToLower(strings.TrimSpace(r.WishID)),
	}
	if out.Name == "" {
		out.Name = anonymousName
	}
	if out.Company == "" {
		out.Company = anonymousCompany
	}
	return out
}

// Result is the fortune returned for one Request.
type Result struct {
	BigCharacter     string `json:"big_character"`
	LuckyPoem        string `json:"lucky_poem"`
	FinancialInsight string `json:"financial_insight"`

	Scenario string   `json:"scenario"`
	Header   string   `json:"header"`
	Source   Source   `json:"source"`
	Repaired []string `json:"repaired,omitempty"`
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
