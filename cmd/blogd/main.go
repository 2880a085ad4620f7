// Copyright 2020 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// blogd serves the blog GraphQL API over HTTP: queries and mutations on
// /graphql, event streams on /subscriptions/posts and
// /subscriptions/comments.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opencensus.io/plugin/ochttp"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"zombiezen.com/go/graphql-server/graphqlhttp"

	"zombiezen.com/go/blog-server/blog"
	"zombiezen.com/go/blog-server/blogapi"
	"zombiezen.com/go/blog-server/pubsub"
)

func main() {
	var addr string
	var demo bool
	rootCmd := &cobra.Command{
		Use:           "blogd",
		Short:         "blogd serves the blog GraphQL API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, demo)
		},
	}
	rootCmd.Flags().StringVar(&addr, "addr", "localhost:4000", "address to listen on")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "seed the store with demo users, posts, and comments")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blogd:", err)
		os.Exit(1)
	}
}

func run(addr string, demo bool) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return xerrors.Errorf("set up logging: %w", err)
	}
	defer logger.Sync()

	store := blog.NewStore()
	if demo {
		seed(store)
		logger.Info("seeded demo data")
	}
	svc := blog.NewService(store, pubsub.NewBus())
	gqlServer, err := blogapi.NewServer(svc)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlhttp.NewHandler(gqlServer))
	mux.Handle("/subscriptions/posts", blogapi.PostEventsHandler(svc, logger))
	mux.Handle("/subscriptions/comments", blogapi.CommentEventsHandler(svc, logger))
	httpServer := &http.Server{
		Addr:    addr,
		Handler: &ochttp.Handler{Handler: mux},
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- httpServer.ListenAndServe()
	}()
	logger.Info("listening", zap.String("addr", addr))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return err
	case s := <-sig:
		logger.Info("shutting down", zap.String("signal", s.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	}
}
