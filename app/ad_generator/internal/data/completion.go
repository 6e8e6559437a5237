package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/biz"
)

type completer struct {
	data *Data
	log  *log.Helper
}

// NewCompleter 基于 eino ChatModel 的单轮文案生成
func NewCompleter(data *Data, logger log.Logger) biz.Completer {
	return &completer{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (c *completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.data.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.data.timeout)
		defer cancel()
	}

	messages := []*schema.Message{schema.UserMessage(prompt)}
	resp, err := c.data.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if resp == nil {
		return "", errors.New("chat completion: empty response")
	}
	c.log.WithContext(ctx).Debugf("chat completion returned %d chars", len(resp.Content))
	return resp.Content, nil
}
