package main

import (
	"github.com/bwmarrin/snowflake"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/smallbiznis/lockerdocs/internal/clock"
	"github.com/smallbiznis/lockerdocs/internal/config"
	"github.com/smallbiznis/lockerdocs/internal/contract"
	contractdomain "github.com/smallbiznis/lockerdocs/internal/contract/domain"
	"github.com/smallbiznis/lockerdocs/internal/observability/logger"
	"github.com/smallbiznis/lockerdocs/internal/observability/metrics"
	"github.com/smallbiznis/lockerdocs/internal/observability/tracing"
	"github.com/smallbiznis/lockerdocs/internal/server"
	"github.com/smallbiznis/lockerdocs/pkg/db"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		fx.Provide(func(cfg config.Config) tracing.Config {
			return tracing.Config{
				Enabled:          cfg.Tracing.Enabled,
				ServiceName:      "lockerdocs",
				ServiceVersion:   version,
				Environment:      cfg.Environment,
				ExporterEndpoint: cfg.Tracing.ExporterEndpoint,
				ExporterProtocol: cfg.Tracing.ExporterProtocol,
				SamplingRatio:    cfg.Tracing.SamplingRatio,
			}
		}),
		fx.Provide(tracing.NewProvider),
		fx.Invoke(func(provider *sdktrace.TracerProvider) {}),
		fx.Provide(func(cfg config.Config) metrics.Config {
			return metrics.Config{
				ServiceName: "lockerdocs",
				Environment: cfg.Environment,
			}
		}),
		metrics.Module,
		db.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			return conn.AutoMigrate(
				&contractdomain.Contract{},
				&contractdomain.Payment{},
			)
		}),
		contract.Module,
		server.Module,
	)
	app.Run()
}
