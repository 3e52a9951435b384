package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/classroom/internal/client/cli"
	"github.com/dmitrijs2005/classroom/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
