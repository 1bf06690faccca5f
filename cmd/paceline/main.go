package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/strideworks/paceline/internal/activity"
	"github.com/strideworks/paceline/internal/clock"
	"github.com/strideworks/paceline/internal/config"
	"github.com/strideworks/paceline/internal/importer"
	"github.com/strideworks/paceline/internal/migration"
	"github.com/strideworks/paceline/internal/observability"
	"github.com/strideworks/paceline/internal/seed"
	"github.com/strideworks/paceline/internal/server"
	"github.com/strideworks/paceline/internal/stats"
	"github.com/strideworks/paceline/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Functional domains
		activity.Module,
		importer.Module,
		stats.Module,

		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
