package fortune

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the instruction sent to the generative backend.
func BuildPrompt(req Request, s Scenario, highlights []string) string {
	var sb strings.Builder

	sb.WriteString("角色：你是一个精通价值投资与中国传统命理的 AI 算命师。\n")
	sb.WriteString("任务：根据用户选择的 [心愿类型] 和 [目标公司]，生成一段运势。\n")
	sb.WriteString(fmt.Sprintf("用户姓名：%s\n", req.Name))
	sb.WriteString(fmt.Sprintf("目标公司：%s\n", req.Company))
	sb.WriteString(fmt.Sprintf("心愿类型：%s（%s）\n", s.ID, s.Label))
	sb.WriteString(fmt.Sprintf("财务亮点：%s\n", strings.Join(highlights, "、")))
	sb.WriteString("\n请只输出一个 JSON 对象，不要输出其他内容：\n")
	sb.WriteString("{\n")
	sb.WriteString(fmt.Sprintf("  \"big_character\": \"从 [%s] 中选一个字\",\n", strings.Join(s.AllowedCharacters, "、")))
	sb.WriteString("  \"lucky_poem\": \"四句七言绝句，必须押韵，通俗易懂，侧重'我'的收获，句与句之间用逗号或句号分隔。\",\n")
	sb.WriteString("  \"financial_insight\": \"格式：金钥AI预测：基于该司[财务亮点]，预示着[用户的利益]将[正向结果]。\"\n")
	sb.WriteString("}\n")

	return sb.String()
}
