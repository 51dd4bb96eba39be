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

// Package app assembles the service from its parts.
package app

import (
	"net/http"

	"github.com/devops-lab/app/internal/config"
	"github.com/devops-lab/app/internal/handler"
	"github.com/devops-lab/app/internal/logging"
	"github.com/devops-lab/app/internal/server"
	"go.uber.org/fx"
)

// Module provides the logger, routes, router and HTTP server, and starts
// the server with the application. It expects a config.Config in the
// container.
var Module = fx.Module("app",
	fx.Provide(
		logging.New,
		handler.AsRoute(handler.NewHelloHandler),
		handler.AsRoute(handler.NewStatusHandler),
		fx.Annotate(
			server.NewRouter,
			fx.ParamTags(`group:"routes"`),
			fx.As(new(http.Handler)),
		),
		server.New,
	),
	fx.Invoke(func(*server.Server) {}),
)

// Options returns everything needed to run the service with cfg.
func Options(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.WithLogger(logging.NewEventLogger),
		Module,
	)
}

// ValidateGraph checks that the dependency graph built from cfg is
// complete without running any constructors.
func ValidateGraph(cfg config.Config) error {
	return fx.ValidateApp(Options(cfg))
}
