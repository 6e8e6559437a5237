package biz

import (
	"fmt"
	"strings"
)

// Sections 模型输出必须依次包含的段落标签
var Sections = []string{
	"Campaign Title",
	"Hook",
	"Primary Copy",
	"Variant A",
	"Variant B",
	"Hashtags",
	"Notes for Designer",
}

// 选填字段为空时写入提示词的占位说明
const (
	audienceNotSpecified  = "Not specified (infer a reasonable audience)."
	promotionNotSpecified = "No specific promotion."
	regionNotSpecified    = "Global (no specific region)."
	contextNotSpecified   = "None provided."
)

var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(`
You are a senior creative copywriter for PepsiCo.
You create high-impact, on-brand, consumer-facing advertising copy.

Your outputs must ALWAYS be structured in the following sections, in this exact order:

`)
	for _, s := range Sections {
		fmt.Fprintf(&sb, "[%s]\n", s)
	}
	sb.WriteString(`
Guidelines:
- Stay consistent with PepsiCo’s energetic, optimistic, and inclusive brand voice.
- Keep copy channel-appropriate (e.g., short & punchy for social, clearer CTAs for email).
- Respect any regional or cultural context.
- If multiple products are used, make sure they all feel naturally integrated.
- Avoid making any illegal, discriminatory, or misleading claims.
`)
	return sb.String()
}

const briefTpl = `%s

Use the following brief to generate the ad:

- Products to feature: %s
- Campaign goal: %s
- Target audience: %s
- Primary channel: %s
- Tone & style: %s
- Promotion / offer: %s
- Region / market: %s
- Extra context / constraints: %s

Adjust the style and length to fit the channel.
Return ONLY the structured sections, with the section labels exactly as defined.
`

// BuildPrompt 由需求拼装提示词，相同的 Brief 总是得到相同的结果
func BuildPrompt(b *Brief) string {
	return fmt.Sprintf(briefTpl,
		systemPrompt,
		b.ProductList(),
		b.CampaignGoal,
		orDefault(b.TargetAudience, audienceNotSpecified),
		b.Channel,
		b.Tone,
		orDefault(b.Promotion, promotionNotSpecified),
		orDefault(b.Region, regionNotSpecified),
		orDefault(b.ExtraContext, contextNotSpecified),
	)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
