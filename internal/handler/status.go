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

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Status is the body of the status endpoint.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Running is the status reported while the process serves requests.
var Running = Status{
	Status:  "running",
	Message: "API is healthy",
}

// StatusHandler reports that the API is up.
type StatusHandler struct {
	log  *zap.Logger
	body []byte
}

// NewStatusHandler builds a new StatusHandler. The payload is encoded once
// here since it never changes.
func NewStatusHandler(log *zap.Logger) (*StatusHandler, error) {
	body, err := json.Marshal(Running)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode status payload")
	}
	return &StatusHandler{log: log, body: body}, nil
}

// Pattern reports the pattern under which
// this handler should be registered.
func (*StatusHandler) Pattern() string {
	return "/api/status"
}

// ServeHTTP handles an HTTP request to the status endpoint.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, ContentTypeJSON)
	if _, err := w.Write(h.body); err != nil {
		h.log.Warn("Failed to write response", zap.Error(err))
	}
}
