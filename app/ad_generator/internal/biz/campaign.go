package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// Temperature 模型采样温度，固定值，与界面上的创意度无关
const Temperature float32 = 0.7

const conceptHeader = "## PepsiCo Campaign Concept\n"

// Status 一次生成请求的结果类型
type Status string

const (
	StatusGenerated     Status = "generated"
	StatusInvalidBrief  Status = "invalid_brief"
	StatusProviderError Status = "provider_error"
)

// Concept 展示给用户的 Markdown 结果
type Concept struct {
	Status   Status
	Markdown string
}

// Completer 文案生成模型，单轮调用，返回完整文本
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CampaignUseCase 广告文案生成业务逻辑
type CampaignUseCase struct {
	completer Completer
	catalog   *Catalog
	log       *log.Helper
}

// NewCampaignUseCase 创建文案生成业务逻辑实例
func NewCampaignUseCase(completer Completer, catalog *Catalog, logger log.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		completer: completer,
		catalog:   catalog,
		log:       log.NewHelper(logger),
	}
}

// Generate 校验需求、调用模型并拼装展示结果。
// 任何失败都转成可展示的文本，不会向调用方返回错误。
func (uc *CampaignUseCase) Generate(ctx context.Context, b *Brief) *Concept {
	if err := b.Validate(uc.catalog); err != nil {
		return &Concept{Status: StatusInvalidBrief, Markdown: errors.FromError(err).Message}
	}
	uc.log.WithContext(ctx).Debugf("creativity hint %.1f is display-only, sampling temperature stays %.1f", b.Creativity, Temperature)

	text, err := uc.completer.Complete(ctx, BuildPrompt(b))
	if err != nil {
		uc.log.WithContext(ctx).Errorf("Error during ad generation: %v", err)
		return &Concept{
			Status:   StatusProviderError,
			Markdown: fmt.Sprintf("An error occurred while generating the ad: %v", err),
		}
	}

	return &Concept{Status: StatusGenerated, Markdown: FormatConcept(b, text)}
}

// FormatConcept 在模型输出前加上固定标题和需求摘要
func FormatConcept(b *Brief, text string) string {
	var sb strings.Builder
	sb.WriteString(conceptHeader)
	fmt.Fprintf(&sb, "**Channel:** %s  \n", b.Channel)
	fmt.Fprintf(&sb, "**Tone:** %s  \n", b.Tone)
	fmt.Fprintf(&sb, "**Products:** %s  \n", b.ProductList())
	fmt.Fprintf(&sb, "**Goal:** %s  \n", b.CampaignGoal)
	sb.WriteString("\n---\n\n")
	sb.WriteString(strings.TrimSpace(text))
	return sb.String()
}
