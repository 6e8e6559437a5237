package service

import (
	"bytes"
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/yuin/goldmark"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/biz"
)

// GenerateCampaignReq 表单提交的投放需求
type GenerateCampaignReq struct {
	Products       []string `json:"products"`
	CampaignGoal   string   `json:"campaign_goal"`
	TargetAudience string   `json:"target_audience"`
	Channel        string   `json:"channel"`
	Tone           string   `json:"tone"`
	Promotion      string   `json:"promotion"`
	Region         string   `json:"region"`
	ExtraContext   string   `json:"extra_context"`
	Creativity     float64  `json:"creativity"`
}

// GenerateCampaignReply 生成结果，Markdown 原文和渲染后的 HTML
type GenerateCampaignReply struct {
	Status   string `json:"status"`
	Markdown string `json:"markdown"`
	Html     string `json:"html"`
}

type GetCatalogReq struct{}

type GetCatalogReply = biz.Catalog

type CampaignService struct {
	uc      *biz.CampaignUseCase
	catalog *biz.Catalog
	md      goldmark.Markdown
	log     *log.Helper
}

func NewCampaignService(uc *biz.CampaignUseCase, catalog *biz.Catalog, logger log.Logger) *CampaignService {
	return &CampaignService{
		uc:      uc,
		catalog: catalog,
		md:      goldmark.New(),
		log:     log.NewHelper(logger),
	}
}

func (s *CampaignService) GetCatalog(ctx context.Context, req *GetCatalogReq) (*GetCatalogReply, error) {
	return s.catalog, nil
}

func (s *CampaignService) GenerateCampaign(ctx context.Context, req *GenerateCampaignReq) (*GenerateCampaignReply, error) {
	concept := s.uc.Generate(ctx, &biz.Brief{
		Products:       req.Products,
		CampaignGoal:   req.CampaignGoal,
		TargetAudience: req.TargetAudience,
		Channel:        req.Channel,
		Tone:           req.Tone,
		Promotion:      req.Promotion,
		Region:         req.Region,
		ExtraContext:   req.ExtraContext,
		Creativity:     req.Creativity,
	})

	reply := &GenerateCampaignReply{
		Status:   string(concept.Status),
		Markdown: concept.Markdown,
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(concept.Markdown), &buf); err != nil {
		// 渲染失败时前端直接展示 Markdown 原文
		s.log.WithContext(ctx).Warnf("render markdown: %v", err)
	} else {
		reply.Html = buf.String()
	}
	return reply, nil
}
