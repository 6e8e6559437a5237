package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/biz"
	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/data"
	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/service"
)

// ProviderSet 是文案生成服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewCompleter,

	// Biz providers
	biz.NewCatalog,
	biz.NewCampaignUseCase,

	// Service providers
	service.NewCampaignService,
)
