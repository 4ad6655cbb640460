package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/shelfkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/shelfkeeper/internal/client/cli"
	"github.com/dmitrijs2005/shelfkeeper/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
