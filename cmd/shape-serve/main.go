// Command shape-serve runs a minimal HTTP/1.1 server: a homepage, static
// files from a local directory, and a POST submission endpoint.
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-serve/internal/routing"
	"github.com/shapestone/shape-serve/internal/server"
	"github.com/shapestone/shape-serve/internal/static"
)

var (
	addr      = flag.String("addr", "127.0.0.1:8080", "listen address")
	staticDir = flag.String("static", "static", "directory served under /static/")
	debug     = flag.Bool("debug", false, "log full request/response exchanges")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	srv := &server.Server{
		Addr:    *addr,
		Handler: routing.NewRouter(static.NewServer(*staticDir)),
		Log:     log,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutdown signal received, stopping listener")
		srv.Close()
	}()

	log.Info().Str("addr", *addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, server.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
