package activity

import (
	"github.com/strideworks/paceline/internal/activity/repository"
	"github.com/strideworks/paceline/internal/activity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("activity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
