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

// Package cliapp is the interactive front end spec.md Section 6 calls an
// "external collaborator" rather than part of the core: a two-item menu
// loop that reads a language tag and prints its parsed Results. Nothing
// here is reused by the engine; the engine never imports this package.
package cliapp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wrenlang/bcp47/engine"
)

const (
	choiceValidate = 1
	choiceQuit     = 0
)

// App runs the interactive menu loop against a fixed Engine.
type App struct {
	eng *engine.Engine
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// New returns an App reading menu choices and tags from in and writing
// the menu and reports to out.
func New(eng *engine.Engine, in io.Reader, out io.Writer, log zerolog.Logger) *App {
	return &App{eng: eng, in: bufio.NewScanner(in), out: out, log: log}
}

// Run drives the loop until the user quits or input is exhausted, and
// returns the process exit code (0 in both cases, per spec.md Section 6).
func (a *App) Run() int {
	for {
		a.printMenu()
		if !a.in.Scan() {
			return 0
		}
		choice, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil {
			a.log.Debug().Str("input", a.in.Text()).Msg("menu choice was not an integer")
			continue
		}

		switch choice {
		case choiceQuit:
			return 0
		case choiceValidate:
			if !a.in.Scan() {
				return 0
			}
			tag := a.in.Text()
			result := a.eng.Parse(tag)
			a.printResult(result)
		default:
			a.log.Debug().Int("choice", choice).Msg("unrecognized menu choice")
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "1) Validate a language tag")
	fmt.Fprintln(a.out, "0) Quit")
}

func (a *App) printResult(r engine.Results) {
	fmt.Fprintf(a.out, "language: %s\n", r.LanguageTag)
	fmt.Fprintf(a.out, "Extended: %s\n", strings.Join(r.ExtendedTags, ", "))
	fmt.Fprintf(a.out, "Scripts: %s\n", strings.Join(r.ScriptTags, ", "))
	fmt.Fprintf(a.out, "Regions: %s\n", strings.Join(r.RegionTags, ", "))
	fmt.Fprintf(a.out, "Variants: %s\n", strings.Join(r.VariantTags, ", "))
	fmt.Fprintf(a.out, "Extensions: %s\n", strings.Join(r.ExtensionTags, ", "))
	fmt.Fprintf(a.out, "Private Use: %s\n", strings.Join(r.PrivateUseTags, ", "))
	fmt.Fprintf(a.out, "Canonicalize: %s\n", r.Canonical)

	if len(r.ErrorMessages) == 0 {
		fmt.Fprintln(a.out, "No Errors.")
		return
	}
	fmt.Fprintln(a.out, "Error List.")
	fmt.Fprintln(a.out, "-----------")
	for _, msg := range r.ErrorMessages {
		fmt.Fprintln(a.out, msg)
	}
}

// RunOnce is the additive, non-interactive mode: parse a single tag given
// on the command line and print its Results as JSON. This sits alongside
// the menu loop spec.md Section 6 specifies exactly; it never replaces it.
func RunOnce(eng *engine.Engine, tag string, out io.Writer) error {
	result := eng.Parse(tag)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
