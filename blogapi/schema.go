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

// Package blogapi exposes the blog service as a GraphQL API: queries
// and mutations are executed by a graphql.Server bound to resolver
// objects in this package, and subscriptions are streamed over
// WebSocket connections fed by the service's notification bus.
package blogapi

import (
	"golang.org/x/xerrors"
	"zombiezen.com/go/graphql-server/graphql"

	"zombiezen.com/go/blog-server/blog"
)

// SchemaSource is the GraphQL type system of the blog API. The
// Subscription fields are served by the WebSocket handlers in this
// package, not by the graphql.Server.
const SchemaSource = `
type Query {
	users(query: String): [User!]!
	posts(query: String): [Post!]!
	comments(query: String): [Comment!]!
}

type Mutation {
	createUser(data: CreateUserInput!): User!
	updateUser(id: ID!, data: UpdateUserInput!): User!
	deleteUser(id: ID!): User!
	createPost(data: CreatePostInput!): Post!
	updatePost(id: ID!, data: UpdatePostInput!): Post!
	deletePost(id: ID!): Post!
	createComment(data: CreateCommentInput!): Comment!
	updateComment(id: ID!, data: UpdateCommentInput!): Comment!
	deleteComment(id: ID!): Comment!
}

type Subscription {
	post: PostSubscriptionPayload!
	comment(postId: ID!): CommentSubscriptionPayload!
}

type User {
	id: ID!
	name: String!
	email: String!
	age: Int
	posts: [Post!]!
	comments: [Comment!]!
}

type Post {
	id: ID!
	title: String!
	body: String!
	published: Boolean!
	author: User!
	comments: [Comment!]!
}

type Comment {
	id: ID!
	text: String!
	author: User!
	post: Post!
}

input CreateUserInput {
	name: String!
	email: String!
	age: Int
}

input UpdateUserInput {
	name: String
	email: String
	age: Int
}

input CreatePostInput {
	title: String!
	body: String!
	published: Boolean!
	author: ID!
}

input UpdatePostInput {
	title: String
	body: String
	published: Boolean
}

input CreateCommentInput {
	text: String!
	author: ID!
	post: ID!
}

input UpdateCommentInput {
	text: String
}

enum MutationType {
	CREATED
	UPDATED
	DELETED
}

type PostSubscriptionPayload {
	mutation: MutationType!
	data: Post!
}

type CommentSubscriptionPayload {
	comment: Comment!
}
`

// NewServer returns a GraphQL server that executes queries and
// mutations against svc.
func NewServer(svc *blog.Service) (*graphql.Server, error) {
	schema, err := graphql.ParseSchema(SchemaSource, nil)
	if err != nil {
		return nil, xerrors.Errorf("blog graphql server: %w", err)
	}
	srv, err := graphql.NewServer(schema, NewQuery(svc), NewMutation(svc))
	if err != nil {
		return nil, xerrors.Errorf("blog graphql server: %w", err)
	}
	return srv, nil
}
