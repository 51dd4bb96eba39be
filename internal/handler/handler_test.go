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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHelloHandler(t *testing.T) {
	h := NewHelloHandler(zaptest.NewLogger(t))
	assert.Equal(t, "/", h.Pattern())

	rec := serve(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Hello from the DevOps-Lab Node.js App!", rec.Body.String())
}

func TestStatusHandler(t *testing.T) {
	h, err := NewStatusHandler(zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "/api/status", h.Pattern())

	rec := serve(t, h, "/api/status")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "running", "message": "API is healthy"}`, rec.Body.String())

	var got Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Running, got)
}

func TestHandlersAreIdempotent(t *testing.T) {
	status, err := NewStatusHandler(zaptest.NewLogger(t))
	require.NoError(t, err)

	for _, r := range []Route{NewHelloHandler(zaptest.NewLogger(t)), status} {
		t.Run(r.Pattern(), func(t *testing.T) {
			first := serve(t, r, r.Pattern())
			for i := 0; i < 5; i++ {
				again := serve(t, r, r.Pattern())
				assert.Equal(t, first.Code, again.Code)
				assert.Equal(t, first.Header(), again.Header())
				assert.Equal(t, first.Body.String(), again.Body.String())
			}
		})
	}
}

func TestAsRoute(t *testing.T) {
	var patterns []string
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		fx.Provide(
			AsRoute(NewHelloHandler),
			AsRoute(NewStatusHandler),
		),
		fx.Invoke(fx.Annotate(
			func(routes []Route) {
				for _, r := range routes {
					patterns = append(patterns, r.Pattern())
				}
			},
			fx.ParamTags(`group:"routes"`),
		)),
	)
	app.RequireStart().RequireStop()

	assert.ElementsMatch(t, []string{"/", "/api/status"}, patterns)
}
