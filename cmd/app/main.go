// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command app serves the DevOps-Lab greeting and status endpoints.
//
//	app [--config path/to/config.yaml]
package main

import (
	"log"
	"os"

	"github.com/devops-lab/app/internal/app"
	"github.com/devops-lab/app/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

func main() {
	opts, err := options(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fx.New(opts).Run()
}

// options parses the command line and loads the configuration it names.
func options(args []string) (fx.Option, error) {
	flags := pflag.NewFlagSet("app", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML configuration file")
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "unable to parse flags")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	return app.Options(cfg), nil
}
