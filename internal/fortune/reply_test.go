package fortune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply_Valid(t *testing.T) {
	r, err := ParseReply(` {"big_character":"涨","lucky_poem":"p","financial_insight":"i","extra":1} `)
	require.NoError(t, err)
	assert.Equal(t, Reply{BigCharacter: "涨", LuckyPoem: "p", FinancialInsight: "i"}, r)
}

func TestParseReply_EmptyStringsArePresent(t *testing.T) {
	_, err := ParseReply(`{"big_character":"","lucky_poem":"","financial_insight":""}`)
	assert.NoError(t, err)
}

func TestParseReply_Empty(t *testing.T) {
	_, err := ParseReply("  \n ")
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestParseReply_MissingKeys(t *testing.T) {
	_, err := ParseReply(`{"big_character":"涨"}`)
	require.ErrorIs(t, err, ErrMalformedReply)
	assert.Contains(t, err.Error(), "lucky_poem")
	assert.Contains(t, err.Error(), "financial_insight")
}

func TestParseReply_NullValueIsMissing(t *testing.T) {
	_, err := ParseReply(`{"big_character":null,"lucky_poem":"p","financial_insight":"i"}`)
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestParseReply_NotJSON(t *testing.T) {
	_, err := ParseReply("The stars say yes.")
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestSplitPoem(t *testing.T) {
	tests := []struct {
		name  string
		poem  string
		lines int
	}{
		{"couplets", "运筹帷幄胜千里，财源滚滚达三江。金钥开启致富门，从容笑看日方长。", 4},
		{"newlines", "一\n二\r\n三\n四\n", 4},
		{"ascii punctuation", "one, two. three; four!", 4},
		{"slashes", "一 / 二 / 三 / 四", 4},
		{"blank lines dropped", "一\n\n  \n二\n三\n四", 4},
		{"three lines", "一，二。三。", 3},
		{"five lines", "一，二。三，四。五。", 5},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SplitPoem(tt.poem), tt.lines)
		})
	}
}

func TestJoinPoem_RoundTripsTemplates(t *testing.T) {
	for _, s := range Scenarios() {
		for _, poem := range s.PoemTemplates {
			assert.Equal(t, poem, JoinPoem(SplitPoem(poem)))
		}
	}
}

func TestRenderInsight(t *testing.T) {
	s := ResolveScenario("wealth")
	req := Request{Name: "王", Company: "腾讯"}
	got := RenderInsight(s, req, []string{"甲", "乙"})

	assert.Equal(t, "金钥AI预测：监测到腾讯具有[甲、乙]等特征，预示着王在2026年将如鱼得水，暴富心愿达成，收益显著。", got)
}

func TestRenderInsight_NoPlaceholdersLeft(t *testing.T) {
	req := Request{Name: "王", Company: "腾讯"}
	for _, s := range Scenarios() {
		got := RenderInsight(s, req, GenericHighlights)
		assert.NotContains(t, got, "{")
		assert.NotContains(t, got, "}")
		assert.Contains(t, got, "行业前景广阔")
	}
}

func TestRequestNormalized(t *testing.T) {
	r := Request{Name: "  一二三四五六七八九十  ", Company: "  腾讯 ", WishID: " Career "}.Normalized()
	assert.Equal(t, "一二三四五六七八", r.Name)
	assert.Equal(t, "腾讯", r.Company)
	assert.Equal(t, "career", r.WishID)

	blank := Request{}.Normalized()
	assert.Equal(t, anonymousName, blank.Name)
	assert.Equal(t, anonymousCompany, blank.Company)
}
