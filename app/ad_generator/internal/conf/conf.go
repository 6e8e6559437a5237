package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-3.5-turbo"
	defaultLLMTimeout  = 60 * time.Second
	defaultHTTPAddr    = "0.0.0.0:8080"
	defaultHTTPTimeout = "120s"
)

// Bootstrap 启动配置
type Bootstrap struct {
	Server *Server `json:"server"`
	Llm    *LLM    `json:"llm"`
	Log    *Log    `json:"log"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// LLM 文案生成模型配置
type LLM struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
	Timeout string `json:"timeout"`
}

// RequestTimeout 单次模型调用的超时时间
func (l *LLM) RequestTimeout() time.Duration {
	if l == nil || l.Timeout == "" {
		return defaultLLMTimeout
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil || d <= 0 {
		return defaultLLMTimeout
	}
	return d
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Load 从配置文件和环境变量加载配置，返回的 cleanup 用于关闭配置源
func Load(path string) (*Bootstrap, func(), error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource(),
		),
	)
	cleanup := func() { _ = c.Close() }

	if err := c.Load(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load config %s: %w", path, err)
	}

	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("scan config: %w", err)
	}
	bc.applyDefaults()
	if err := bc.Validate(); err != nil {
		cleanup()
		return nil, nil, err
	}
	return &bc, cleanup, nil
}

func (b *Bootstrap) applyDefaults() {
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Http == nil {
		b.Server.Http = &HTTP{}
	}
	if b.Server.Http.Addr == "" {
		b.Server.Http.Addr = defaultHTTPAddr
	}
	if b.Server.Http.Timeout == "" {
		b.Server.Http.Timeout = defaultHTTPTimeout
	}
	if b.Llm == nil {
		b.Llm = &LLM{}
	}
	if b.Llm.BaseUrl == "" {
		b.Llm.BaseUrl = defaultBaseURL
	}
	if b.Llm.Model == "" {
		b.Llm.Model = defaultModel
	}
	if b.Log == nil {
		b.Log = &Log{Level: "info"}
	}
}

// Validate 校验启动必需的配置项，缺少 API Key 时拒绝启动
func (b *Bootstrap) Validate() error {
	if b.Llm == nil || strings.TrimSpace(b.Llm.ApiKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return nil
}
