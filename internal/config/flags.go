// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers the configuration flags on fs and returns the config
// they are parsed into. Unset flags leave zero values, so the returned config
// is a valid top layer for [GetStructuredConfig] once fs is parsed.
//
// Flags:
//
//	-a/--address       storefront address in format [host]:[port]
//	-c/--config        json file path with configs
//	-d/--dsn           local database path
//	--owner            repository owner
//	--repo             repository name
//	--branch           repository branch
//	--media-folder     media folder inside the repository
//	--metadata-file    metadata document path inside the repository
//	--api-address      contents API base URL
//	--request-timeout  outbound request timeout (e.g., "30s")
//	--hash-key         token sealing key
//	--webhook-url      interaction event webhook
//	--log-level        log level
//	--log-file         rotating log file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.VarP(&addressValue{dst: &cfg.Server.HTTPAddress}, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Local database path")
	fs.StringVar(&cfg.Repo.Owner, "owner", "", "Repository owner")
	fs.StringVar(&cfg.Repo.Name, "repo", "", "Repository name")
	fs.StringVar(&cfg.Repo.Branch, "branch", "", "Repository branch")
	fs.StringVar(&cfg.Repo.MediaFolder, "media-folder", "", "Media folder inside the repository")
	fs.StringVar(&cfg.Repo.MetadataFile, "metadata-file", "", "Metadata document path")
	fs.StringVar(&cfg.Adapter.APIAddress, "api-address", "", "Contents API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Token sealing key")
	fs.StringVar(&cfg.Notify.WebhookURL, "webhook-url", "", "Interaction event webhook")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")

	return cfg
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
// It validates the port range, checks IP correctness unless host is "localhost",
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string { return "host:port" }

// addressValue parses a NetAddress and stores its canonical form in dst.
type addressValue struct {
	addr NetAddress
	dst  *string
}

func (v *addressValue) String() string { return v.addr.String() }

func (v *addressValue) Set(s string) error {
	if err := v.addr.Set(s); err != nil {
		return err
	}
	*v.dst = v.addr.String()
	return nil
}

func (v *addressValue) Type() string { return v.addr.Type() }
