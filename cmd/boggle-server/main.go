// main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the HTTP service entrypoint, adapted from the
// original App Engine service entrypoint.

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

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/vthorsteinsson/goboggle"
)

func authenticated(accessKey string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if accessKey != "" {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != accessKey {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	boggle.LoadEnv(".env")
	cfg := boggle.ConfigFromEnv()

	dict, err := boggle.LoadDictionary(cfg.DictionaryPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	cache, err := boggle.NewResultCache(1024)
	if err != nil {
		log.Fatalf("creating result cache: %v", err)
	}

	var archive *boggle.Archive
	if cfg.DatastoreProject != "" {
		archive, err = boggle.NewArchive(context.Background(), cfg.DatastoreProject)
		if err != nil {
			log.Fatalf("creating archive: %v", err)
		}
	}

	svc := &boggle.Service{
		Dictionaries: map[string]*boggle.Dictionary{"default": dict},
		ScoreTable:   boggle.DefaultScoreTable,
		Cache:        cache,
		Archive:      archive,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/generate", authenticated(cfg.AccessKey, svc.HandleGenerateRequest))
	mux.HandleFunc("/analyse", authenticated(cfg.AccessKey, svc.HandleAnalyseRequest))
	mux.HandleFunc("/_ah/warmup", func(w http.ResponseWriter, r *http.Request) {})

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
