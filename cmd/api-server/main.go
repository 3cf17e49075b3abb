package main

import (
	"encoding/json"
	"fmt"
	"os"

	"sideb/config"
	"sideb/pkg/log"
	"sideb/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	appProvider := InitServer(cfg)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "cleanup",
				Usage: "sweep aged-out provisional content images once and exit",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "hours",
						Usage: "age threshold in hours; 0 sweeps every provisional image",
						Value: 24,
					},
				},
				Action: func(ctx *cli.Context) error {
					report, err := appProvider.Images.Sweep(ctx.Context, ctx.Int("hours"))
					if err != nil {
						return err
					}
					out, err := json.MarshalIndent(report, "", "  ")
					if err != nil {
						return err
					}
					fmt.Println(string(out))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
