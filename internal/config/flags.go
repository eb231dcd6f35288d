// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags of the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-m metadata document file path
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-address admin server base URL used by the console
//	-adapter-timeout console request timeout
//	-metadata-path metadata document path relative to the admin server
//	-config-endpoint server configuration endpoint relative to the admin server
//	-reload-debounce metadata reload debounce (e.g., "500ms")
//	-version application version
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var metadataFile string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var adapterMetadataPath, adapterConfigEndpoint string
	var reloadDebounce time.Duration
	var version string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3, pgx)")
	flag.StringVar(&metadataFile, "m", "", "Metadata document file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Admin server base URL")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Console request timeout (e.g., 10s)")
	flag.StringVar(&adapterMetadataPath, "metadata-path", "", "Metadata document path on the admin server")
	flag.StringVar(&adapterConfigEndpoint, "config-endpoint", "", "Server configuration endpoint on the admin server")
	flag.DurationVar(&reloadDebounce, "reload-debounce", 0, "Metadata reload debounce (e.g., 500ms)")
	flag.StringVar(&version, "version", "", "Application version")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				MetadataPath: metadataFile,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
			MetadataPath:   adapterMetadataPath,
			ConfigEndpoint: adapterConfigEndpoint,
		},
		Workers: Workers{
			MetadataReloadDebounce: reloadDebounce,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
