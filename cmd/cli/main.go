package main

import (
	"context"

	"github.com/mp28jam28/board-auth/internal/client/cli"
	"github.com/mp28jam28/board-auth/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
