package contract

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/lockerdocs/internal/contract/repository"
	"github.com/smallbiznis/lockerdocs/internal/contract/service"
	"github.com/smallbiznis/lockerdocs/internal/document/codec"
	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

var Module = fx.Module("contract.service",
	fx.Provide(repository.Provide),
	fx.Provide(func() codec.Codec {
		return codec.NewPDF(layout.A4())
	}),
	fx.Provide(service.NewService),
)
