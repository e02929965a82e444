// config.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements environment-driven configuration shared by the CLI
// and the HTTP service.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package boggle

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file if present at path. A missing file is not
// an error: this is an optional local-development override, not a required
// configuration source.
func LoadEnv(path string) {
	_ = godotenv.Load(path)
}

// Config holds the environment-driven settings read by cmd/boggle-server.
// cmd/boggle takes its settings from command-line flags instead.
type Config struct {
	DictionaryPath   string
	Port             string
	AccessKey        string
	DatastoreProject string
}

// ConfigFromEnv reads Config from the process environment, the way
// go-app/main.go reads ACCESS_KEY and PORT.
func ConfigFromEnv() Config {
	return Config{
		DictionaryPath:   envOrDefault("BOGGLE_DICTIONARY", "dicts/english.dawg"),
		Port:             envOrDefault("PORT", "8080"),
		AccessKey:        os.Getenv("ACCESS_KEY"),
		DatastoreProject: os.Getenv("DATASTORE_PROJECT_ID"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
