package importer

import (
	"github.com/strideworks/paceline/internal/importer/repository"
	"github.com/strideworks/paceline/internal/importer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("importer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
