package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	"github.com/iWorld-y/ad_generator/app/ad_generator/internal/conf"
	"github.com/iWorld-y/ad_generator/app/ad_generator/pkg/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "ad_generator"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string
	// flagenv 是本地开发用的 .env 文件路径
	flagenv string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/ad_generator/configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagenv, "env", ".env", "dotenv file loaded before config, ignored when missing")
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()
	logger.Log.Info("PepsiCo Ad Generator starting...")

	// 本地开发时从 .env 注入 OPENAI_API_KEY / PORT，已存在的环境变量优先
	if err := godotenv.Load(flagenv); err != nil && !os.IsNotExist(err) {
		logger.Log.Warnf("load %s: %v", flagenv, err)
	}

	bc, closeConfig, err := conf.Load(flagconf)
	if err != nil {
		logger.Log.Fatalf("无法加载配置: %v", err)
	}
	defer closeConfig()

	if err := logger.InitLogger(bc.Log.Level, bc.Log.File); err != nil {
		logger.Log.Fatalf("无法初始化日志: %v", err)
	}

	// 初始化日志记录器，包含时间戳、调用者信息、服务ID等上下文
	kl := log.With(logger.NewKratosLogger(logger.Log),
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	app, cleanup, err := initApp(bc.Server, bc.Llm, kl)
	if err != nil {
		logger.Log.Fatalf("服务初始化失败: %v", err)
	}
	defer cleanup()

	logger.Log.Infof("Launching ad generator on %s...", bc.Server.Http.Addr)
	if err := app.Run(); err != nil {
		logger.Log.Fatalf("服务异常退出: %v", err)
	}
}
