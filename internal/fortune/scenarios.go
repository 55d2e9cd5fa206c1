package fortune

import "strings"

// DefaultScenarioID is the scenario used for unknown or empty wish ids.
const DefaultScenarioID = "wealth"

// Scenario describes one wish category: which lucky characters may be drawn,
// the canned poems, and how the financial insight is phrased.
type Scenario struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Header      string `json:"header"`
	Description string `json:"description"`
	ThemeColor  string `json:"theme_color"`
	ActionVerb  string `json:"action_verb"`
	CTA         string `json:"cta"`
	Icon        string `json:"icon"`

	AllowedCharacters []string `json:"allowed_characters"`
	PoemTemplates     []string `json:"-"`

	// InsightTemplate supports the {company}, {highlights}, {name} and {wish}
	// placeholders.
	InsightTemplate string `json:"-"`
}

// AllowsCharacter reports whether c is one of the scenario's lucky characters.
func (s Scenario) AllowsCharacter(c string) bool {
	for _, allowed := range s.AllowedCharacters {
		if allowed == c {
			return true
		}
	}
	return false
}

// scenarioOrder is the display order of the wish picker.
var scenarioOrder = []string{"wealth", "career", "sales", "safety"}

var scenarios = map[string]Scenario{
	"wealth": {
		ID:                "wealth",
		Label:             "暴富",
		Header:            "2026 丙午马年·招财签",
		Description:       "搞钱第一",
		ThemeColor:        "red",
		ActionVerb:        "正在坐等",
		CTA:               "扫码测测你的搞钱运势 ➜",
		Icon:              "Bull",
		AllowedCharacters: []string{"涨", "牛", "红", "翻"},
		PoemTemplates: []string{
			"运筹帷幄胜千里，财源滚滚达三江。金钥开启致富门，从容笑看日方长。",
			"牛气冲天开新局，红盘高挂满堂金。十倍翻身非梦想，一骑绝尘马蹄轻。",
		},
		InsightTemplate: "金钥AI预测：监测到{company}具有[{highlights}]等特征，预示着{name}在2026年将如鱼得水，{wish}心愿达成，收益显著。",
	},
	"career": {
		ID:                "career",
		Label:             "高升",
		Header:            "2026 丙午马年·青云签",
		Description:       "升职加薪",
		ThemeColor:        "blue",
		ActionVerb:        "正在冲击",
		CTA:               "扫码测测你的跳槽运势 ➜",
		Icon:              "Rocket",
		AllowedCharacters: []string{"升", "高", "聘", "稳"},
		PoemTemplates: []string{
			"职场风云凭我跃，步步高升展宏图。贵人相助行大运，前程似锦且无忧。",
			"青云直上马蹄疾，一纸新聘到案头。才高自有伯乐识，加薪晋级不用愁。",
		},
		InsightTemplate: "金钥AI预测：{company}凭借[{highlights}]持续扩张，人才需求旺盛，预示着{name}在2026年职场{wish}，身价水涨船高。",
	},
	"sales": {
		ID:                "sales",
		Label:             "长虹",
		Header:            "2026 丙午马年·必胜签",
		Description:       "业绩翻倍",
		ThemeColor:        "purple",
		ActionVerb:        "正在攻略",
		CTA:               "扫码测测你的开单运势 ➜",
		Icon:              "Qilin",
		AllowedCharacters: []string{"爆", "赢", "签", "成"},
		PoemTemplates: []string{
			"业绩长虹冲云霄，客户盈门喜眉梢。天时地利人和聚，功成名就乐逍遥。",
			"大单频签笔生花，回款如潮进万家。月月爆单成常态，年终奖金拿到麻。",
		},
		InsightTemplate: "金钥AI预测：{company}的[{highlights}]为上下游带来源源不断的商机，预示着{name}在2026年业绩{wish}，大单频签。",
	},
	"safety": {
		ID:                "safety",
		Label:             "稳赢",
		Header:            "2026 丙午马年·定海签",
		Description:       "落袋为安",
		ThemeColor:        "green",
		ActionVerb:        "正在坐镇",
		CTA:               "扫码测测你的职场运势 ➜",
		Icon:              "Mount Tai",
		AllowedCharacters: []string{"泰", "定", "磐", "安"},
		PoemTemplates: []string{
			"稳扎稳打基业固，风控严密心不惊。穿越周期见真章，岁岁平安福满盈。",
			"泰山磐石立潮头，任尔东西南北风。落袋为安心自定，复利长跑笑从容。",
		},
		InsightTemplate: "金钥AI预测：{company}具备[{highlights}]的防御属性，足以穿越周期，预示着{name}在2026年{wish}无忧，落袋为安。",
	},
}

// ResolveScenario returns the scenario for a wire wish id. Unknown ids,
// including the empty string, resolve to the wealth scenario.
func ResolveScenario(wishID string) Scenario {
	if s, ok := scenarios[strings.ToLower(strings.TrimSpace(wishID))]; ok {
		return s
	}
	return scenarios[DefaultScenarioID]
}

// IsKnownScenario reports whether wishID names a registered scenario.
func IsKnownScenario(wishID string) bool {
	_, ok := scenarios[strings.ToLower(strings.TrimSpace(wishID))]
	return ok
}

// Scenarios returns all scenarios in wish-picker order.
func Scenarios() []Scenario {
	out := make([]Scenario, 0, len(scenarioOrder))
	for _, id := range scenarioOrder {
		out = append(out, scenarios[id])
	}
	return out
}

// LoadingPhrases are the captions the UI rotates while a fortune is drawn.
var LoadingPhrases = []string{
	"正在分析财报数据...",
	"正在链接财神...",
	"正在计算ROE...",
	"正在观测K线...",
	"正在查阅周易...",
}
