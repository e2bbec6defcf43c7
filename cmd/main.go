package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kostaaa1/irembo/internal/config"
	"github.com/Kostaaa1/irembo/internal/logging"
	"github.com/Kostaaa1/irembo/web/server"
	"github.com/Kostaaa1/irembo/web/server/handlers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("irembo", flag.ContinueOnError)
	option, err := ParseFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	conf, err := config.Get(option.ConfigPath)
	if err != nil {
		return err
	}
	option.Apply(fs, conf)

	log, err := logging.New(conf.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	if conf.Log.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	static, err := handlers.NewStatic(log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(conf.Server, log, static)
	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}

	log.Info("server stopped")
	return nil
}
