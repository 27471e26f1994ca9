// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"unicode/utf8"

	"carvel.dev/spellgate/pkg/allowlist"
	"carvel.dev/spellgate/pkg/dictionary"
	"carvel.dev/spellgate/pkg/server"
	"carvel.dev/spellgate/pkg/spell"
	"github.com/spf13/cobra"
)

type ServerOptions struct {
	ListenAddr string
	Dictionary string
}

func NewServerOptions() *ServerOptions {
	return &ServerOptions{}
}

func NewServerCmd(o *ServerOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts spell-check HTTP server",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", "localhost:8080", "Listen address")
	cmd.Flags().StringVar(&o.Dictionary, "dictionary", "", "Dictionary selector (default "+dictionary.DefaultSelector+")")
	return cmd
}

// Server loads the dictionary once at startup; a bad selector fails here,
// not on the first request.
func (o *ServerOptions) Server() (*server.Server, error) {
	selector := o.Dictionary
	if selector == "" {
		selector = dictionary.DefaultSelector
	}

	speller, err := dictionary.Load(selector)
	if err != nil {
		return nil, err
	}

	checker := spell.NewChecker(speller, nil)

	opts := server.ServerOpts{
		ListenAddr: o.ListenAddr,
		CheckFunc:  checkFunc(checker, selector),
	}

	return server.NewServer(opts), nil
}

func (o *ServerOptions) Run() error {
	srv, err := o.Server()
	if err != nil {
		return err
	}

	return srv.Run()
}

func checkFunc(checker *spell.Checker, loadedSelector string) func(server.CheckRequest) (server.CheckResponse, error) {
	return func(req server.CheckRequest) (server.CheckResponse, error) {
		// one dictionary per server; reject rather than silently check
		// against a different language than the request asked for
		if req.Dictionary != "" && req.Dictionary != loadedSelector {
			return server.CheckResponse{}, fmt.Errorf(
				"Expected dictionary selector '%s' to match loaded dictionary '%s'", req.Dictionary, loadedSelector)
		}

		if !utf8.ValidString(req.Text) {
			return server.CheckResponse{}, fmt.Errorf("Expected request text to be valid UTF-8")
		}

		flagged := checker.CheckText(req.Text)

		gate := allowlist.NewGate(allowlist.NewAllowList(req.AllowList))
		result := gate.Check(map[string][]string{"body": flagged})

		resp := server.CheckResponse{Pass: result.Pass(), Violations: []string{}}
		for _, violation := range result.Violations {
			resp.Violations = append(resp.Violations, violation.Token)
		}

		return resp, nil
	}
}
