package server

import (
	"context"
	"embed"
	nethttp "net/http"
	"time"

	_ "github.com/go-kratos/kratos/v2/encoding/form"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/conf"
	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/service"
)

//go:embed assets/*
var assets embed.FS

const (
	operationGetCatalog       = "/ad_generator.v1.Campaign/GetCatalog"
	operationGenerateCampaign = "/ad_generator.v1.Campaign/GenerateCampaign"
)

func NewHTTPServer(c *conf.Server, s *service.CampaignService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)
	registerCampaignHTTPServer(srv, s)

	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, _ := assets.ReadFile("assets/index.html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(content)
	})

	return srv
}

func registerCampaignHTTPServer(srv *http.Server, s *service.CampaignService) {
	r := srv.Route("/")
	r.GET("/v1/catalog", getCatalogHandler(s))
	r.POST("/v1/campaigns", generateCampaignHandler(s))
}

func getCatalogHandler(s *service.CampaignService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.GetCatalogReq
		http.SetOperation(ctx, operationGetCatalog)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetCatalog(ctx, req.(*service.GetCatalogReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func generateCampaignHandler(s *service.CampaignService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.GenerateCampaignReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, operationGenerateCampaign)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GenerateCampaign(ctx, req.(*service.GenerateCampaignReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
