package biz

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog 表单可选项：产品、投放渠道和语气
type Catalog struct {
	Products       []string `yaml:"products" json:"products"`
	Channels       []string `yaml:"channels" json:"channels"`
	Tones          []string `yaml:"tones" json:"tones"`
	DefaultChannel string   `yaml:"default_channel" json:"default_channel"`
	DefaultTone    string   `yaml:"default_tone" json:"default_tone"`
}

// NewCatalog 加载内置的 PepsiCo 产品目录
func NewCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog 从 YAML 解析目录并校验默认值
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Products) == 0 || len(c.Channels) == 0 || len(c.Tones) == 0 {
		return nil, fmt.Errorf("catalog must list products, channels and tones")
	}
	if !c.HasChannel(c.DefaultChannel) {
		return nil, fmt.Errorf("default channel %q is not in the catalog", c.DefaultChannel)
	}
	if !c.HasTone(c.DefaultTone) {
		return nil, fmt.Errorf("default tone %q is not in the catalog", c.DefaultTone)
	}
	return &c, nil
}

func (c *Catalog) HasProduct(p string) bool { return slices.Contains(c.Products, p) }
func (c *Catalog) HasChannel(ch string) bool { return slices.Contains(c.Channels, ch) }
func (c *Catalog) HasTone(t string) bool     { return slices.Contains(c.Tones, t) }
