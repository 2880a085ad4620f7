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

// Mutation is the GraphQL mutation object. Each field validates its
// arguments against the store before writing anything; errors surface
// in the response's errors list with a null data field.
type Mutation struct {
	svc *blog.Service
}

// NewMutation returns the mutation object for svc.
func NewMutation(svc *blog.Service) *Mutation {
	return &Mutation{svc: svc}
}

// CreateUserInput mirrors the CreateUserInput input type.
type CreateUserInput struct {
	Name  string
	Email string
	Age   graphql.NullInt
}

// UpdateUserInput mirrors the UpdateUserInput input type. Null fields
// leave the record untouched.
type UpdateUserInput struct {
	Name  graphql.NullString
	Email graphql.NullString
	Age   graphql.NullInt
}

// CreatePostInput mirrors the CreatePostInput input type.
type CreatePostInput struct {
	Title     string
	Body      string
	Published bool
	Author    string
}

// UpdatePostInput mirrors the UpdatePostInput input type. Null fields
// leave the record untouched.
type UpdatePostInput struct {
	Title     graphql.NullString
	Body      graphql.NullString
	Published graphql.NullBoolean
}

// CreateCommentInput mirrors the CreateCommentInput input type.
type CreateCommentInput struct {
	Text   string
	Author string
	Post   string
}

// UpdateCommentInput mirrors the UpdateCommentInput input type.
type UpdateCommentInput struct {
	Text graphql.NullString
}

// CreateUserArgs holds the arguments of createUser.
type CreateUserArgs struct {
	Data CreateUserInput
}

// UpdateUserArgs holds the arguments of updateUser.
type UpdateUserArgs struct {
	ID   string
	Data UpdateUserInput
}

// CreatePostArgs holds the arguments of createPost.
type CreatePostArgs struct {
	Data CreatePostInput
}

// UpdatePostArgs holds the arguments of updatePost.
type UpdatePostArgs struct {
	ID   string
	Data UpdatePostInput
}

// CreateCommentArgs holds the arguments of createComment.
type CreateCommentArgs struct {
	Data CreateCommentInput
}

// UpdateCommentArgs holds the arguments of updateComment.
type UpdateCommentArgs struct {
	ID   string
	Data UpdateCommentInput
}

// DeleteArgs holds the single id argument shared by the delete fields.
type DeleteArgs struct {
	ID string
}

// CreateUser resolves the createUser field.
func (m *Mutation) CreateUser(args *CreateUserArgs) (*User, error) {
	input := blog.NewUser{
		Name:  args.Data.Name,
		Email: args.Data.Email,
	}
	if args.Data.Age.Valid {
		age := args.Data.Age.Int
		input.Age = &age
	}
	u, err := m.svc.CreateUser(input)
	if err != nil {
		return nil, err
	}
	return &User{svc: m.svc, data: u}, nil
}

// UpdateUser resolves the updateUser field.
func (m *Mutation) UpdateUser(args *UpdateUserArgs) (*User, error) {
	var update blog.UserUpdate
	if args.Data.Name.Valid {
		update.Name = &args.Data.Name.S
	}
	if args.Data.Email.Valid {
		update.Email = &args.Data.Email.S
	}
	if args.Data.Age.Valid {
		update.Age = &args.Data.Age.Int
	}
	u, err := m.svc.UpdateUser(args.ID, update)
	if err != nil {
		return nil, err
	}
	return &User{svc: m.svc, data: u}, nil
}

// DeleteUser resolves the deleteUser field, returning the removed user.
func (m *Mutation) DeleteUser(args *DeleteArgs) (*User, error) {
	u, err := m.svc.DeleteUser(args.ID)
	if err != nil {
		return nil, err
	}
	return &User{svc: m.svc, data: u}, nil
}

// CreatePost resolves the createPost field.
func (m *Mutation) CreatePost(args *CreatePostArgs) (*Post, error) {
	p, err := m.svc.CreatePost(blog.NewPost{
		Title:     args.Data.Title,
		Body:      args.Data.Body,
		Published: args.Data.Published,
		Author:    args.Data.Author,
	})
	if err != nil {
		return nil, err
	}
	return &Post{svc: m.svc, data: p}, nil
}

// UpdatePost resolves the updatePost field.
func (m *Mutation) UpdatePost(args *UpdatePostArgs) (*Post, error) {
	var update blog.PostUpdate
	if args.Data.Title.Valid {
		update.Title = &args.Data.Title.S
	}
	if args.Data.Body.Valid {
		update.Body = &args.Data.Body.S
	}
	if args.Data.Published.Valid {
		update.Published = &args.Data.Published.Bool
	}
	p, err := m.svc.UpdatePost(args.ID, update)
	if err != nil {
		return nil, err
	}
	return &Post{svc: m.svc, data: p}, nil
}

// DeletePost resolves the deletePost field, returning the removed post.
func (m *Mutation) DeletePost(args *DeleteArgs) (*Post, error) {
	p, err := m.svc.DeletePost(args.ID)
	if err != nil {
		return nil, err
	}
	return &Post{svc: m.svc, data: p}, nil
}

// CreateComment resolves the createComment field.
func (m *Mutation) CreateComment(args *CreateCommentArgs) (*Comment, error) {
	c, err := m.svc.CreateComment(blog.NewComment{
		Text:   args.Data.Text,
		Author: args.Data.Author,
		Post:   args.Data.Post,
	})
	if err != nil {
		return nil, err
	}
	return &Comment{svc: m.svc, data: c}, nil
}

// UpdateComment resolves the updateComment field.
func (m *Mutation) UpdateComment(args *UpdateCommentArgs) (*Comment, error) {
	var update blog.CommentUpdate
	if args.Data.Text.Valid {
		update.Text = &args.Data.Text.S
	}
	c, err := m.svc.UpdateComment(args.ID, update)
	if err != nil {
		return nil, err
	}
	return &Comment{svc: m.svc, data: c}, nil
}

// DeleteComment resolves the deleteComment field, returning the removed
// comment.
func (m *Mutation) DeleteComment(args *DeleteArgs) (*Comment, error) {
	c, err := m.svc.DeleteComment(args.ID)
	if err != nil {
		return nil, err
	}
	return &Comment{svc: m.svc, data: c}, nil
}
