package biz

import (
	"fmt"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
)

// DefaultCreativity 界面上创意度滑块的默认值
const DefaultCreativity = 0.7

const (
	ReasonNoProducts     = "NO_PRODUCTS"
	ReasonMissingGoal    = "MISSING_GOAL"
	ReasonUnknownProduct = "UNKNOWN_PRODUCT"
	ReasonUnknownChannel = "UNKNOWN_CHANNEL"
	ReasonUnknownTone    = "UNKNOWN_TONE"
)

var (
	ErrNoProducts  = errors.BadRequest(ReasonNoProducts, "Please select at least one PepsiCo product.")
	ErrMissingGoal = errors.BadRequest(ReasonMissingGoal, "Please describe the campaign goal.")
)

// Brief 用户提交的投放需求，每次请求新建，不做持久化
type Brief struct {
	Products       []string
	CampaignGoal   string
	TargetAudience string
	Channel        string
	Tone           string
	Promotion      string
	Region         string
	ExtraContext   string
	// Creativity 仅用于界面展示，不会传给模型，采样温度固定为 Temperature
	Creativity float64
}

// Validate 校验需求并补全渠道、语气的默认值。
// 返回的错误均为 kratos BadRequest，Message 可直接展示给用户。
func (b *Brief) Validate(c *Catalog) error {
	if len(b.Products) == 0 {
		return ErrNoProducts
	}
	if strings.TrimSpace(b.CampaignGoal) == "" {
		return ErrMissingGoal
	}
	for _, p := range b.Products {
		if !c.HasProduct(p) {
			return errors.BadRequest(ReasonUnknownProduct, fmt.Sprintf("Unknown PepsiCo product: %s.", p))
		}
	}

	if b.Channel = strings.TrimSpace(b.Channel); b.Channel == "" {
		b.Channel = c.DefaultChannel
	} else if !c.HasChannel(b.Channel) {
		return errors.BadRequest(ReasonUnknownChannel, fmt.Sprintf("Unknown channel: %s.", b.Channel))
	}
	if b.Tone = strings.TrimSpace(b.Tone); b.Tone == "" {
		b.Tone = c.DefaultTone
	} else if !c.HasTone(b.Tone) {
		return errors.BadRequest(ReasonUnknownTone, fmt.Sprintf("Unknown tone: %s.", b.Tone))
	}
	if b.Creativity == 0 {
		b.Creativity = DefaultCreativity
	}
	return nil
}

// ProductList 逗号拼接的产品列表
func (b *Brief) ProductList() string {
	return strings.Join(b.Products, ", ")
}
