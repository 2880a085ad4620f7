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

package blog

import (
	"zombiezen.com/go/blog-server/pubsub"
)

// A Bus carries mutation events from the service to subscription
// listeners. *pubsub.Bus satisfies it; it is an explicit constructor
// dependency so tests can substitute a recording implementation.
type Bus interface {
	Publish(topic string, payload interface{})
	Subscribe(topic string) *pubsub.Subscription
}

// MutationType labels the kind of change a post event announces.
type MutationType string

// Mutation types.
const (
	MutationCreated MutationType = "CREATED"
	MutationUpdated MutationType = "UPDATED"
	MutationDeleted MutationType = "DELETED"
)

// TopicPost is the topic carrying all post lifecycle events.
const TopicPost = "post"

// CommentTopic returns the topic carrying comment-created events for a
// single post.
func CommentTopic(postID string) string {
	return "comment:" + postID
}

// A PostEvent announces a change to the set of published posts. A post
// becoming unpublished is announced as DELETED and a post becoming
// published as CREATED; Data carries the record as of the announced
// state (the pre-mutation snapshot for DELETED).
type PostEvent struct {
	Mutation MutationType `json:"mutation"`
	Data     Post         `json:"data"`
}

// A CommentEvent announces a new comment on the post identified by its
// topic.
type CommentEvent struct {
	Comment Comment `json:"comment"`
}
