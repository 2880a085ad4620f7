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
	"zombiezen.com/go/graphql-server/graphql"

	"zombiezen.com/go/blog-server/blog"
)

// Query is the GraphQL query object. Collection fields take an optional
// case-insensitive search string.
type Query struct {
	svc *blog.Service
}

// NewQuery returns the query object for svc.
func NewQuery(svc *blog.Service) *Query {
	return &Query{svc: svc}
}

// QueryArgs holds the optional filter argument shared by the top-level
// collection fields.
type QueryArgs struct {
	Query graphql.NullString
}

// Users resolves the users field.
func (q *Query) Users(args *QueryArgs) []*User {
	return wrapUsers(q.svc, q.svc.Users(args.Query.S))
}

// Posts resolves the posts field.
func (q *Query) Posts(args *QueryArgs) []*Post {
	return wrapPosts(q.svc, q.svc.Posts(args.Query.S))
}

// Comments resolves the comments field.
func (q *Query) Comments(args *QueryArgs) []*Comment {
	return wrapComments(q.svc, q.svc.Comments(args.Query.S))
}

// User resolves the fields of the User type. Relations are derived from
// the service on demand.
type User struct {
	svc  *blog.Service
	data blog.User
}

func (u *User) Id() string    { return u.data.ID }
func (u *User) Name() string  { return u.data.Name }
func (u *User) Email() string { return u.data.Email }

func (u *User) Age() *int32 { return u.data.Age }

func (u *User) Posts() []*Post {
	return wrapPosts(u.svc, u.svc.UserPosts(u.data))
}

func (u *User) Comments() []*Comment {
	return wrapComments(u.svc, u.svc.UserComments(u.data))
}

// Post resolves the fields of the Post type.
type Post struct {
	svc  *blog.Service
	data blog.Post
}

func (p *Post) Id() string      { return p.data.ID }
func (p *Post) Title() string   { return p.data.Title }
func (p *Post) Body() string    { return p.data.Body }
func (p *Post) Published() bool { return p.data.Published }

func (p *Post) Author() (*User, error) {
	u, err := p.svc.PostAuthor(p.data)
	if err != nil {
		return nil, err
	}
	return &User{svc: p.svc, data: u}, nil
}

func (p *Post) Comments() []*Comment {
	return wrapComments(p.svc, p.svc.PostComments(p.data))
}

// Comment resolves the fields of the Comment type.
type Comment struct {
	svc  *blog.Service
	data blog.Comment
}

func (c *Comment) Id() string   { return c.data.ID }
func (c *Comment) Text() string { return c.data.Text }

func (c *Comment) Author() (*User, error) {
	u, err := c.svc.CommentAuthor(c.data)
	if err != nil {
		return nil, err
	}
	return &User{svc: c.svc, data: u}, nil
}

func (c *Comment) Post() (*Post, error) {
	p, err := c.svc.CommentPost(c.data)
	if err != nil {
		return nil, err
	}
	return &Post{svc: c.svc, data: p}, nil
}

func wrapUsers(svc *blog.Service, users []blog.User) []*User {
	wrapped := make([]*User, len(users))
	for i, u := range users {
		wrapped[i] = &User{svc: svc, data: u}
	}
	return wrapped
}

func wrapPosts(svc *blog.Service, posts []blog.Post) []*Post {
	wrapped := make([]*Post, len(posts))
	for i, p := range posts {
		wrapped[i] = &Post{svc: svc, data: p}
	}
	return wrapped
}

func wrapComments(svc *blog.Service, comments []blog.Comment) []*Comment {
	wrapped := make([]*Comment, len(comments))
	for i, c := range comments {
		wrapped[i] = &Comment{svc: svc, data: c}
	}
	return wrapped
}
