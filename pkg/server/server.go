// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the spell-check gate over HTTP, for docs-preview
// bots and the lambda deployment. The server holds one loaded dictionary;
// each request brings its own text and allow-list.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

type CheckRequest struct {
	Text      string   `json:"text"`
	AllowList []string `json:"allowlist"`
	// Dictionary must match the server's loaded dictionary when set; the
	// server never silently substitutes another language.
	Dictionary string `json:"dictionary"`
}

type CheckResponse struct {
	Pass       bool     `json:"pass"`
	Violations []string `json:"violations"`
}

type ServerOpts struct {
	ListenAddr string
	CheckFunc  func(CheckRequest) (CheckResponse, error)
}

type Server struct {
	opts ServerOpts
}

func NewServer(opts ServerOpts) *Server {
	return &Server{opts}
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	// no need for caching as it's a POST
	mux.HandleFunc("/check", s.corsHandler(s.checkHandler))
	mux.HandleFunc("/health", s.healthHandler)
	return mux
}

func (s *Server) Run() error {
	server := &http.Server{
		Addr:    s.opts.ListenAddr,
		Handler: s.Mux(),
	}
	fmt.Printf("Listening on http://%s\n", server.Addr)
	return server.ListenAndServe()
}

func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.logError(w, err)
		return
	}

	var req CheckRequest

	err = json.Unmarshal(data, &req)
	if err != nil {
		s.logError(w, fmt.Errorf("Parsing check request: %s", err))
		return
	}

	resp, err := s.opts.CheckFunc(req)
	if err != nil {
		s.logError(w, err)
		return
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		s.logError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	s.write(w, respBytes)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.write(w, []byte("ok"))
}

func (s *Server) corsHandler(wrappedFunc func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		wrappedFunc(w, r)
	}
}

func (s *Server) write(w http.ResponseWriter, data []byte) {
	_, err := w.Write(data)
	if err != nil {
		log.Printf("Error writing response: %s", err)
	}
}

func (s *Server) logError(w http.ResponseWriter, err error) {
	log.Printf("Error handling request: %s", err)
	w.WriteHeader(http.StatusBadRequest)
	s.write(w, []byte(err.Error()))
}
