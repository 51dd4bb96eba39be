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

// Package server runs the HTTP listener for the lifetime of the Fx
// application.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/devops-lab/app/internal/config"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params are the dependencies of New.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Handler   http.Handler
	Log       *zap.Logger
}

// Server is an HTTP server that begins serving requests
// when the Fx application starts.
type Server struct {
	cfg config.HTTPConfig
	log *zap.Logger
	srv *http.Server

	mu   sync.RWMutex
	addr net.Addr
}

// New builds a Server and ties its start and stop to the lifecycle.
func New(p Params) *Server {
	cfg := p.Config.HTTP
	s := &Server{
		cfg: cfg,
		log: p.Log,
		srv: &http.Server{
			Addr:           cfg.Address(),
			Handler:        p.Handler,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: 1 << 20,
			ErrorLog:       zap.NewStdLog(p.Log),
		},
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})
	return s
}

// Addr reports the address the server is bound to,
// or nil if it has not started.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.addr
}

func (s *Server) start(context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "unable to open TCP listener on %q", s.srv.Addr)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	port := s.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.log.Info(fmt.Sprintf("App listening at http://localhost:%d", port),
		zap.Stringer("addr", ln.Addr()))

	go s.serve(ln)
	return nil
}

func (s *Server) serve(ln net.Listener) {
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("HTTP serve error", zap.Error(err))
	}
}

func (s *Server) stop(ctx context.Context) error {
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}

	s.log.Info("Stopping HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "unable to shut down HTTP server")
	}
	return nil
}
