package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/gophpowa/internal/apps/powactl"
)

func main() {
	cfg, err := powactl.ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := powactl.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
