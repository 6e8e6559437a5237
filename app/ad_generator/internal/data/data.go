package data

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/biz"
	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/conf"
)

// Data 进程级共享资源，启动时创建一次，之后只读
type Data struct {
	chatModel model.BaseChatModel
	timeout   time.Duration
}

// NewData 初始化文案生成模型客户端
func NewData(c *conf.LLM, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	helper.Infof("Initializing OpenAI chat model (%s)...", c.Model)

	temperature := biz.Temperature
	cm, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL:     c.BaseUrl,
		APIKey:      c.ApiKey,
		Model:       c.Model,
		Temperature: &temperature,
		Timeout:     c.RequestTimeout(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	helper.Info("LLM initialized.")

	cleanup := func() {
		helper.Info("closing the data resources")
	}
	return &Data{chatModel: cm, timeout: c.RequestTimeout()}, cleanup, nil
}
