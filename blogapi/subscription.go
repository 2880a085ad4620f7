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

package blogapi

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"zombiezen.com/go/blog-server/blog"
	"zombiezen.com/go/blog-server/pubsub"
)

// PostEventsHandler returns a handler that upgrades the request to a
// WebSocket and streams post lifecycle events as JSON frames shaped
// like PostSubscriptionPayload.
func PostEventsHandler(svc *blog.Service, logger *zap.Logger) http.Handler {
	return &subscriptionHandler{
		logger: logger,
		subscribe: func(*http.Request) (*pubsub.Subscription, error) {
			return svc.SubscribePosts(), nil
		},
	}
}

// CommentEventsHandler returns a handler that upgrades the request to a
// WebSocket and streams comment-created events for the post identified
// by the postId query parameter, as JSON frames shaped like
// CommentSubscriptionPayload. Requests naming a missing or unpublished
// post are rejected with 404 before the upgrade.
func CommentEventsHandler(svc *blog.Service, logger *zap.Logger) http.Handler {
	return &subscriptionHandler{
		logger: logger,
		subscribe: func(r *http.Request) (*pubsub.Subscription, error) {
			postID := r.URL.Query().Get("postId")
			if postID == "" {
				return nil, xerrors.New("missing postId parameter")
			}
			return svc.SubscribeComments(postID)
		},
	}
}

type subscriptionHandler struct {
	logger    *zap.Logger
	subscribe func(*http.Request) (*pubsub.Subscription, error)
}

var upgrader = websocket.Upgrader{
	// The tutorial server has no authentication or origin policy.
	CheckOrigin: func(*http.Request) bool { return true },
}

func (h *subscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscribe(r)
	if err != nil {
		code := http.StatusBadRequest
		if xerrors.Is(err, blog.ErrPostNotFound) {
			code = http.StatusNotFound
		}
		http.Error(w, err.Error(), code)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		sub.Close()
		h.logger.Warn("subscription upgrade failed",
			zap.String("topic", sub.Topic()),
			zap.Error(err))
		return
	}
	defer conn.Close()
	defer sub.Close()
	h.logger.Debug("subscription opened", zap.String("topic", sub.Topic()))

	// The read loop discards incoming frames but notices the client
	// hanging up.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case payload, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := conn.WriteJSON(payload); err != nil {
				h.logger.Debug("subscription write failed",
					zap.String("topic", sub.Topic()),
					zap.Error(err))
				return
			}
		case <-clientGone:
			h.logger.Debug("subscription closed by client", zap.String("topic", sub.Topic()))
			return
		}
	}
}
