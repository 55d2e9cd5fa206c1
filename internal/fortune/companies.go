package fortune

import "strings"

// Company is a listed company with canned highlight phrases.
type Company struct {
	Ticker     string   `json:"ticker"`
	Name       string   `json:"name"`
	Highlights []string `json:"highlights"`
}

// GenericHighlights are used when the company text matches no record.
var GenericHighlights = []string{"行业前景广阔", "基本面稳健"}

// companies is matched in order; the first match wins.
var companies = []Company{
	{Ticker: "00700.HK", Name: "腾讯控股 (Tencent)", Highlights: []string{"经营性现金流充沛", "社交护城河深厚", "游戏业务回暖", "视频号商业化加速"}},
	{Ticker: "BABA", Name: "阿里巴巴 (Alibaba)", Highlights: []string{"电商GMV稳居第一", "阿里云盈利能力提升", "估值处于历史低位", "回购力度大"}},
	{Ticker: "600519.SH", Name: "贵州茅台 (Moutai)", Highlights: []string{"高端白酒龙头", "毛利率极高", "分红慷慨", "品牌护城河极深"}},
	{Ticker: "00268.HK", Name: "金蝶国际 (Kingdee)", Highlights: []string{"云转型成效显著", "订阅收入占比提升", "国产替代受益者", "SaaS龙头"}},
	{Ticker: "BIDU", Name: "百度 (Baidu)", Highlights: []string{"AI大模型领先", "自动驾驶布局早", "搜索业务现金流稳健", "云服务增长快"}},
	{Ticker: "PDD", Name: "拼多多 (Pinduoduo)", Highlights: []string{"跨境电商Temu爆发", "国内主站用户粘性高", "人效极高", "低价心智占领"}},
	{Ticker: "300750.SZ", Name: "宁德时代 (CATL)", Highlights: []string{"全球动力电池龙头", "技术壁垒高", "海外市场扩张顺利", "储能业务高增"}},
	{Ticker: "002594.SZ", Name: "比亚迪 (BYD)", Highlights: []string{"新能源车销量全球第一", "全产业链垂直整合", "出口增长强劲", "高端化初见成效"}},
	{Ticker: "600036.SH", Name: "招商银行 (CMB)", Highlights: []string{"零售之王", "资产质量优异", "数字化转型领先", "高净值客户粘性强"}},
	{Ticker: "03690.HK", Name: "美团 (Meituan)", Highlights: []string{"本地生活霸主", "即时配送网络强大", "新业务减亏", "到店业务护城河深"}},
	{Ticker: "JD", Name: "京东 (JD.com)", Highlights: []string{"供应链效率极致", "自建物流体验好", "下沉市场渗透", "百亿补贴见效"}},
	{Ticker: "01810.HK", Name: "小米集团 (Xiaomi)", Highlights: []string{"手机高端化战略", "汽车业务超预期", "AIoT生态完善", "全球化布局"}},
	{Ticker: "02015.HK", Name: "理想汽车 (Li Auto)", Highlights: []string{"增程技术精准定位", "家庭用户口碑好", "毛利率健康", "现金流充裕"}},
	{Ticker: "000333.SZ", Name: "美的集团 (Midea)", Highlights: []string{"家电全球化龙头", "收购库卡布局机器人", "B端业务增长快", "分红稳定"}},
	{Ticker: "601888.SH", Name: "中国中免 (CDF)", Highlights: []string{"全球免税龙头", "渠道优势明显", "消费回流受益", "毛利率修复"}},
	{Ticker: "600276.SH", Name: "恒瑞医药 (Hengrui)", Highlights: []string{"创新药转型成功", "PD-1等多款重磅药", "研发投入巨大", "出海进程加速"}},
	{Ticker: "000858.SZ", Name: "五粮液 (Wuliangye)", Highlights: []string{"浓香型白酒龙头", "品牌价值稳固", "渠道改革深化", "分红率提升"}},
	{Ticker: "600030.SH", Name: "中信证券 (CITIC)", Highlights: []string{"券商龙头", "机构业务优势明显", "国际化布局领先", "抗风险能力强"}},
	{Ticker: "002415.SZ", Name: "海康威视 (Hikvision)", Highlights: []string{"安防监控全球第一", "创新业务多点开花", "AI落地场景丰富", "数字化转型赋能"}},
	{Ticker: "601318.SH", Name: "中国平安 (Ping An)", Highlights: []string{"综合金融牌照齐全", "寿险改革深化", "医疗健康生态圈", "低估值高股息"}},
}

// FindCompany returns the first company whose name contains text or whose
// ticker equals it. Both comparisons are case-insensitive.
func FindCompany(text string) (Company, bool) {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return Company{}, false
	}
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.ToLower(c.Ticker) == q {
			return c, true
		}
	}
	return Company{}, false
}

// LookupHighlights returns the highlight phrases of the matching company,
// or GenericHighlights when nothing matches. The result is never empty and
// is safe for the caller to modify.
func LookupHighlights(text string) []string {
	src := GenericHighlights
	if c, ok := FindCompany(text); ok {
		src = c.Highlights
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Suggest returns up to limit companies whose name or ticker contains query,
// in registry order. A non-positive limit returns all matches.
func Suggest(query string, limit int) []Company {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Company
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Ticker), q) {
			out = append(out, c)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// Companies returns the full company list in registry order.
func Companies() []Company {
	out := make([]Company, len(companies))
	copy(out, companies)
	return out
}
