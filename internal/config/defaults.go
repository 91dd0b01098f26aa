// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultAPIAddress     = "https://api.github.com"
	DefaultRawAddress     = "https://raw.githubusercontent.com"
	DefaultOwner          = "pratikh6i"
	DefaultRepoName       = "sanmatisales"
	DefaultBranch         = "main"
	DefaultMediaFolder    = "media"
	DefaultMetadataFile   = "products.json"
	DefaultContactPhone   = "918530515022"
	DefaultLanguage       = "en"
	DefaultDSN            = "storefront.db"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultLogFile        = "storefront.log"
	DefaultOrderSaveDelay = 500 * time.Millisecond
	DefaultUploadInterval = 300 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Language:     DefaultLanguage,
			ContactPhone: DefaultContactPhone,
		},
		Repo: Repo{
			Owner:        DefaultOwner,
			Name:         DefaultRepoName,
			Branch:       DefaultBranch,
			MediaFolder:  DefaultMediaFolder,
			MetadataFile: DefaultMetadataFile,
		},
		Adapter: Adapter{
			APIAddress:     DefaultAPIAddress,
			RawAddress:     DefaultRawAddress,
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			OrderSaveDelay: DefaultOrderSaveDelay,
			UploadInterval: DefaultUploadInterval,
		},
		Notify: Notify{Timeout: 5 * time.Second},
		Log: Log{
			Level:      "info",
			File:       DefaultLogFile,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
