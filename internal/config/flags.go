// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-data-dir paste store data directory
//	-max-blob-bytes maximum accepted ciphertext size, in bytes
//	-default-expiration policy lifetime applied when a request carries no Expiration header
//	-reaper-interval how often the background sweep scans for expired records
//	-static-dir directory serving the upload/download web frontend
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-grace time allowed for in-flight requests to drain on shutdown
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var dataDir string
	var maxBlobBytes int64
	var defaultExpiration time.Duration
	var reaperInterval time.Duration
	var staticDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownGrace time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&dataDir, "data-dir", "", "Paste store data directory")
	flag.Int64Var(&maxBlobBytes, "max-blob-bytes", 0, "Maximum accepted ciphertext size, in bytes")
	flag.DurationVar(&defaultExpiration, "default-expiration", 0, "Default policy lifetime when Expiration header is absent")
	flag.DurationVar(&reaperInterval, "reaper-interval", 0, "Expiration sweep interval")
	flag.StringVar(&staticDir, "static-dir", "", "Static asset directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownGrace, "shutdown-grace", 0, "Graceful shutdown drain period")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			ShutdownGrace:  shutdownGrace,
		},
		Storage: Storage{
			DataDir:           dataDir,
			MaxBlobBytes:      maxBlobBytes,
			DefaultExpiration: defaultExpiration,
		},
		Reaper: Reaper{
			Interval: reaperInterval,
		},
		Static: Static{
			AssetDir: staticDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It rejects ports below 1 (no upper bound is checked), checks IP correctness
// unless host is "localhost" or empty,
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
