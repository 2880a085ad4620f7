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

// Package blog provides the data model and mutation engine for a small
// blogging service: users, posts, and comments held in memory, kept
// referentially consistent under creates, updates, and cascading deletes,
// with mutation events announced on a notification bus.
package blog

import "golang.org/x/xerrors"

// A User is an account that authors posts and comments.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int32 `json:"age,omitempty"`
}

// A Post is an article written by a user. Author holds the id of the
// user that wrote it. Comments may only be attached while Published is
// true.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Author    string `json:"author"`
}

// A Comment is a remark on a published post. Author and Post hold the
// ids of the user that wrote it and the post it is attached to.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Post   string `json:"post"`
}

// NewUser holds the caller-supplied fields of a user to create. The id
// is assigned by the service, never by the caller.
type NewUser struct {
	Name  string
	Email string
	Age   *int32
}

// NewPost holds the caller-supplied fields of a post to create. Author
// must identify an existing user.
type NewPost struct {
	Title     string
	Body      string
	Published bool
	Author    string
}

// NewComment holds the caller-supplied fields of a comment to create.
// Author must identify an existing user and Post a published post.
type NewComment struct {
	Text   string
	Author string
	Post   string
}

// UserUpdate is a partial update of a user. Nil fields are left
// untouched.
type UserUpdate struct {
	Name  *string
	Email *string
	Age   *int32
}

// PostUpdate is a partial update of a post. Nil fields are left
// untouched.
type PostUpdate struct {
	Title     *string
	Body      *string
	Published *bool
}

// CommentUpdate is a partial update of a comment. Nil fields are left
// untouched.
type CommentUpdate struct {
	Text *string
}

// Errors returned by the service's validation step. Mutations validate
// before applying anything, so a returned error implies the store was
// not modified.
var (
	ErrUserNotFound    = xerrors.New("user not found")
	ErrPostNotFound    = xerrors.New("post not found")
	ErrCommentNotFound = xerrors.New("comment not found")
	ErrEmailTaken      = xerrors.New("email taken")
	ErrAuthorNotFound  = xerrors.New("author not found")
)
