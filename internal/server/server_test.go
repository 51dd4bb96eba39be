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
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"

	"github.com/devops-lab/app/internal/apitest"
	"github.com/devops-lab/app/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(port int) config.Config {
	cfg := config.Default()
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = port
	return cfg
}

func TestServerLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	lc := fxtest.NewLifecycle(t)

	s := New(Params{
		Lifecycle: lc,
		Config:    testConfig(0),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}),
		Log: zap.New(core),
	})
	assert.Nil(t, s.Addr(), "no address before start")

	lc.RequireStart()
	defer lc.RequireStop()

	addr := s.Addr()
	require.NotNil(t, addr)
	assert.Equal(t, "ok", apitest.GetSuccess(t, "http://"+addr.String()+"/"))

	_, port, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)
	started := logs.FilterMessage("App listening at http://localhost:" + port)
	assert.Equal(t, 1, started.Len(), "startup message must name the bound port")
}

func TestServerBindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	port := taken.Addr().(*net.TCPAddr).Port
	lc := fxtest.NewLifecycle(t)
	New(Params{
		Lifecycle: lc,
		Config:    testConfig(port),
		Handler:   http.NotFoundHandler(),
		Log:       zap.NewNop(),
	})

	err = lc.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to open TCP listener on \"127.0.0.1:"+strconv.Itoa(port)+"\"")
}
