// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package route provides a thin wrapper around httprouter that carries path
// parameters in the request context.
package route

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type param string

// Param returns the named route parameter from ctx, or "" if unset.
func Param(ctx context.Context, p string) string {
	if v, ok := ctx.Value(param(p)).(string); ok {
		return v
	}
	return ""
}

// WithParam returns a new context with the given route parameter set.
func WithParam(ctx context.Context, p, v string) context.Context {
	return context.WithValue(ctx, param(p), v)
}

// Router wraps httprouter.Router and injects route parameters into the
// request context.
type Router struct {
	rtr *httprouter.Router
}

// New returns an empty router.
func New() *Router {
	return &Router{rtr: httprouter.New()}
}

func (r *Router) handle(h http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		ctx := req.Context()
		for _, p := range params {
			ctx = WithParam(ctx, p.Key, p.Value)
		}
		h(w, req.WithContext(ctx))
	}
}

// Get registers a handler for GET requests on path.
func (r *Router) Get(path string, h http.HandlerFunc) {
	r.rtr.GET(path, r.handle(h))
}

// Head registers a handler for HEAD requests on path.
func (r *Router) Head(path string, h http.HandlerFunc) {
	r.rtr.HEAD(path, r.handle(h))
}

// Post registers a handler for POST requests on path.
func (r *Router) Post(path string, h http.HandlerFunc) {
	r.rtr.POST(path, r.handle(h))
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rtr.ServeHTTP(w, req)
}
