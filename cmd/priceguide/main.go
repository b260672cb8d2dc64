package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/hillcosite/priceguide/internal/clock"
	"github.com/hillcosite/priceguide/internal/config"
	"github.com/hillcosite/priceguide/internal/logger"
	"github.com/hillcosite/priceguide/internal/migration"
	"github.com/hillcosite/priceguide/internal/server"
	"github.com/hillcosite/priceguide/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
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
