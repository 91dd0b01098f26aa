// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// Durations are accepted either as strings ("500ms") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		HashKey      string `json:"hash_key"`
		Version      string `json:"version"`
		Language     string `json:"language"`
		ContactPhone string `json:"contact_phone"`
	} `json:"app,omitempty"`

	Repo struct {
		Owner        string `json:"owner"`
		Name         string `json:"name"`
		Branch       string `json:"branch"`
		MediaFolder  string `json:"media_folder"`
		MetadataFile string `json:"metadata_file"`
	} `json:"repo,omitempty"`

	Adapter struct {
		APIAddress     string   `json:"api_address"`
		RawAddress     string   `json:"raw_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		OrderSaveDelay  Duration `json:"order_save_delay"`
		ConflictBackoff Duration `json:"conflict_backoff"`
		UploadInterval  Duration `json:"upload_interval"`
	} `json:"workers,omitempty"`

	Notify struct {
		WebhookURL string   `json:"webhook_url"`
		Timeout    Duration `json:"timeout"`
	} `json:"notify,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
		MaxAgeDays int    `json:"max_age_days"`
		Compress   bool   `json:"compress"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:      jsonCfg.App.HashKey,
			Version:      jsonCfg.App.Version,
			Language:     jsonCfg.App.Language,
			ContactPhone: jsonCfg.App.ContactPhone,
		},
		Repo: Repo{
			Owner:        jsonCfg.Repo.Owner,
			Name:         jsonCfg.Repo.Name,
			Branch:       jsonCfg.Repo.Branch,
			MediaFolder:  jsonCfg.Repo.MediaFolder,
			MetadataFile: jsonCfg.Repo.MetadataFile,
		},
		Adapter: Adapter{
			APIAddress:     jsonCfg.Adapter.APIAddress,
			RawAddress:     jsonCfg.Adapter.RawAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			OrderSaveDelay:  time.Duration(jsonCfg.Workers.OrderSaveDelay),
			ConflictBackoff: time.Duration(jsonCfg.Workers.ConflictBackoff),
			UploadInterval:  time.Duration(jsonCfg.Workers.UploadInterval),
		},
		Notify: Notify{
			WebhookURL: jsonCfg.Notify.WebhookURL,
			Timeout:    time.Duration(jsonCfg.Notify.Timeout),
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
			Compress:   jsonCfg.Log.Compress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
