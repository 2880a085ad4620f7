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
	"strings"

	"golang.org/x/xerrors"
)

// Read-side derivation: collection filters and relations, recomputed
// per call by linear scan. Related records come back in insertion
// order.

// Users returns all users, or the users whose name contains query
// (case-insensitively) if query is non-empty.
func (s *Service) Users(query string) []User {
	if query == "" {
		return s.store.FilterUsers(func(User) bool { return true })
	}
	q := strings.ToLower(query)
	return s.store.FilterUsers(func(u User) bool {
		return strings.Contains(strings.ToLower(u.Name), q)
	})
}

// Posts returns all posts, or the posts whose title or body contains
// query (case-insensitively) if query is non-empty.
func (s *Service) Posts(query string) []Post {
	if query == "" {
		return s.store.FilterPosts(func(Post) bool { return true })
	}
	q := strings.ToLower(query)
	return s.store.FilterPosts(func(p Post) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Body), q)
	})
}

// Comments returns all comments, or the comments whose text contains
// query (case-insensitively) or whose id equals it exactly if query is
// non-empty.
func (s *Service) Comments(query string) []Comment {
	if query == "" {
		return s.store.FilterComments(func(Comment) bool { return true })
	}
	q := strings.ToLower(query)
	return s.store.FilterComments(func(c Comment) bool {
		return strings.Contains(strings.ToLower(c.Text), q) || c.ID == query
	})
}

// PostAuthor returns the user that wrote p.
func (s *Service) PostAuthor(p Post) (User, error) {
	u, ok := s.store.FindUser(func(u User) bool { return u.ID == p.Author })
	if !ok {
		return User{}, xerrors.Errorf("author of post %s: %w", p.ID, ErrUserNotFound)
	}
	return u, nil
}

// PostComments returns the comments on p.
func (s *Service) PostComments(p Post) []Comment {
	return s.store.FilterComments(func(c Comment) bool { return c.Post == p.ID })
}

// UserPosts returns the posts written by u.
func (s *Service) UserPosts(u User) []Post {
	return s.store.FilterPosts(func(p Post) bool { return p.Author == u.ID })
}

// UserComments returns the comments written by u.
func (s *Service) UserComments(u User) []Comment {
	return s.store.FilterComments(func(c Comment) bool { return c.Author == u.ID })
}

// CommentAuthor returns the user that wrote c.
func (s *Service) CommentAuthor(c Comment) (User, error) {
	u, ok := s.store.FindUser(func(u User) bool { return u.ID == c.Author })
	if !ok {
		return User{}, xerrors.Errorf("author of comment %s: %w", c.ID, ErrUserNotFound)
	}
	return u, nil
}

// CommentPost returns the post that c is attached to.
func (s *Service) CommentPost(c Comment) (Post, error) {
	p, ok := s.store.FindPost(func(p Post) bool { return p.ID == c.Post })
	if !ok {
		return Post{}, xerrors.Errorf("post of comment %s: %w", c.ID, ErrPostNotFound)
	}
	return p, nil
}
