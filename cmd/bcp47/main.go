/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command bcp47 is the CLI shell around the engine package: an
// interactive menu loop by default (spec.md Section 6), or a one-shot
// JSON report when a tag is given as a positional argument.
package main

import (
	"fmt"
	"os"

	"github.com/ogier/pflag"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/wrenlang/bcp47/engine"
	"github.com/wrenlang/bcp47/internal/cliapp"
	"github.com/wrenlang/bcp47/internal/regsource"
)

func main() {
	os.Exit(run())
}

func run() int {
	registryPath := pflag.StringP("registry", "r", "", "path to the IANA language subtag registry file")
	configPath := pflag.StringP("config", "c", "", "path to an optional YAML config file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging to stderr")
	format := pflag.StringP("format", "f", "", `output format for a one-shot tag argument ("json")`)
	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	} else {
		log = log.Level(zerolog.DebugLevel)
	}

	fs := afero.NewOsFs()
	cfg, err := loadFileConfig(fs, *configPath)
	if err != nil {
		log.Error().Err(err).Str("path", *configPath).Msg("failed to read config file")
		return 1
	}

	if *registryPath == "" {
		*registryPath = cfg.RegistryPath
	}
	if !*verbose && cfg.LogLevel != "" {
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			log = log.Level(lvl)
		}
	}

	reg, err := regsource.Load(fs, *registryPath, log)
	if err != nil {
		log.Error().Err(err).Msg("could not load language subtag registry")
		return 1
	}

	eng := engine.New(reg)

	if args := pflag.Args(); len(args) > 0 {
		tag := args[0]
		if *format == "json" || *format == "" {
			if err := cliapp.RunOnce(eng, tag, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		}
		log.Error().Str("format", *format).Msg("unrecognized output format")
		return 1
	}

	app := cliapp.New(eng, os.Stdin, os.Stdout, log)
	return app.Run()
}
