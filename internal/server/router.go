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

package server

import (
	"net/http"

	"github.com/devops-lab/app/internal/handler"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter builds a router serving each route on GET and HEAD.
//
// Unknown paths and known paths requested with another method both get a
// plain 404.
func NewRouter(routes []handler.Route, log *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.NotFoundHandler()
	router.MethodNotAllowedHandler = http.NotFoundHandler()

	for _, r := range routes {
		router.Handle(r.Pattern(), r).Methods(http.MethodGet, http.MethodHead)
		log.Debug("Registered route", zap.String("pattern", r.Pattern()))
	}

	// Outermost first, so the access log sees the status written on panic.
	router.Use(accessLogInbound(log), panicInbound(log))
	return router
}
