// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/omegaupload/omegaupload/internal/allocator"
	"github.com/omegaupload/omegaupload/internal/config"
	"github.com/omegaupload/omegaupload/internal/handler"
	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/reaper"
	"github.com/omegaupload/omegaupload/internal/server"
	"github.com/omegaupload/omegaupload/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("omegaupload-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Msg("starting a server")
	log.Debug().Any("config", cfg).Msg("received configs")

	pasteStore, err := store.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening store")
	}

	alloc := allocator.New(pasteStore)

	handlers, err := handler.NewHandlers(pasteStore, alloc, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	sweep := reaper.New(pasteStore, cfg.Reaper.Interval, log)

	servers, err := server.NewServer(handlers, sweep, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()

	if err := pasteStore.Close(); err != nil {
		log.Error().Err(err).Msg("error closing store")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
