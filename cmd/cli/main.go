package main

import (
	"context"
	"log"

	"github.com/avolkov/qanda/internal/admincli"
	"github.com/avolkov/qanda/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := admincli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
