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
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"zombiezen.com/go/blog-server/pubsub"
)

// Service validates and applies mutations against a store and announces
// the ones that affect published posts on the bus. Every mutation runs
// validate, apply, then notify: a returned error means the store was
// not touched and nothing was published.
type Service struct {
	store *Store
	bus   Bus

	newID func() string
}

// NewService returns a service operating on store and publishing events
// to bus.
func NewService(store *Store, bus Bus) *Service {
	return &Service{
		store: store,
		bus:   bus,
		newID: uuid.NewString,
	}
}

// CreateUser adds a new user with a fresh id. It returns ErrEmailTaken
// if any existing user holds the same email (exact, case-sensitive
// comparison).
func (s *Service) CreateUser(input NewUser) (User, error) {
	_, taken := s.store.FindUser(func(u User) bool { return u.Email == input.Email })
	if taken {
		return User{}, xerrors.Errorf("create user: %w", ErrEmailTaken)
	}
	u := User{
		ID:    s.newID(),
		Name:  input.Name,
		Email: input.Email,
	}
	if input.Age != nil {
		age := *input.Age
		u.Age = &age
	}
	s.store.InsertUser(u)
	return u, nil
}

// UpdateUser applies the supplied fields of update to the user with the
// given id. Supplying an email that differs from the user's current one
// fails with ErrEmailTaken when any other user holds it; re-supplying
// the unchanged current email is not an error.
func (s *Service) UpdateUser(id string, update UserUpdate) (User, error) {
	u, ok := s.store.FindUser(func(u User) bool { return u.ID == id })
	if !ok {
		return User{}, xerrors.Errorf("update user: %w", ErrUserNotFound)
	}
	if update.Email != nil && *update.Email != u.Email {
		_, taken := s.store.FindUser(func(other User) bool { return other.Email == *update.Email })
		if taken {
			return User{}, xerrors.Errorf("update user: %w", ErrEmailTaken)
		}
		u.Email = *update.Email
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Age != nil {
		age := *update.Age
		u.Age = &age
	}
	s.store.ReplaceUser(u)
	return u, nil
}

// DeleteUser removes the user with the given id along with everything
// that references it: the user's posts, the comments on those posts,
// and the user's comments on any other post. It returns the removed
// user.
func (s *Service) DeleteUser(id string) (User, error) {
	removed := s.store.RemoveUsers(func(u User) bool { return u.ID == id })
	if len(removed) == 0 {
		return User{}, xerrors.Errorf("delete user: %w", ErrUserNotFound)
	}
	posts := s.store.RemovePosts(func(p Post) bool { return p.Author == id })
	for _, p := range posts {
		postID := p.ID
		s.store.RemoveComments(func(c Comment) bool { return c.Post == postID })
	}
	s.store.RemoveComments(func(c Comment) bool { return c.Author == id })
	return removed[0], nil
}

// CreatePost adds a new post with a fresh id. It returns
// ErrAuthorNotFound if no user has the given author id. Creating an
// already-published post announces CREATED on the post topic; an
// unpublished draft is created silently.
func (s *Service) CreatePost(input NewPost) (Post, error) {
	_, ok := s.store.FindUser(func(u User) bool { return u.ID == input.Author })
	if !ok {
		return Post{}, xerrors.Errorf("create post: %w", ErrAuthorNotFound)
	}
	p := Post{
		ID:        s.newID(),
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		Author:    input.Author,
	}
	s.store.InsertPost(p)
	if p.Published {
		s.bus.Publish(TopicPost, PostEvent{Mutation: MutationCreated, Data: p})
	}
	return p, nil
}

// UpdatePost applies the supplied fields of update to the post with the
// given id.
//
// Events are announced only when the Published field is supplied:
// flipping it true to false announces DELETED carrying the pre-update
// snapshot, flipping it false to true announces CREATED with the
// updated record, and supplying it unchanged announces UPDATED if the
// title or body changed in the same call. An update that omits
// Published announces nothing, even if it changed other fields.
func (s *Service) UpdatePost(id string, update PostUpdate) (Post, error) {
	p, ok := s.store.FindPost(func(p Post) bool { return p.ID == id })
	if !ok {
		return Post{}, xerrors.Errorf("update post: %w", ErrPostNotFound)
	}
	prev := p
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Body != nil {
		p.Body = *update.Body
	}
	if update.Published != nil {
		p.Published = *update.Published
	}
	s.store.ReplacePost(p)
	if update.Published != nil {
		switch {
		case prev.Published && !p.Published:
			s.bus.Publish(TopicPost, PostEvent{Mutation: MutationDeleted, Data: prev})
		case !prev.Published && p.Published:
			s.bus.Publish(TopicPost, PostEvent{Mutation: MutationCreated, Data: p})
		case prev.Title != p.Title || prev.Body != p.Body:
			s.bus.Publish(TopicPost, PostEvent{Mutation: MutationUpdated, Data: p})
		}
	}
	return p, nil
}

// DeletePost removes the post with the given id and every comment
// attached to it, returning the removed post. Deleting a published post
// announces DELETED on the post topic.
func (s *Service) DeletePost(id string) (Post, error) {
	removed := s.store.RemovePosts(func(p Post) bool { return p.ID == id })
	if len(removed) == 0 {
		return Post{}, xerrors.Errorf("delete post: %w", ErrPostNotFound)
	}
	s.store.RemoveComments(func(c Comment) bool { return c.Post == id })
	p := removed[0]
	if p.Published {
		s.bus.Publish(TopicPost, PostEvent{Mutation: MutationDeleted, Data: p})
	}
	return p, nil
}

// CreateComment adds a new comment with a fresh id and announces it on
// the post's comment topic. The target post must exist and be
// published; an unpublished target fails with ErrPostNotFound exactly
// like a nonexistent one. The author must be an existing user.
func (s *Service) CreateComment(input NewComment) (Comment, error) {
	_, ok := s.store.FindPost(func(p Post) bool { return p.ID == input.Post && p.Published })
	if !ok {
		return Comment{}, xerrors.Errorf("create comment: %w", ErrPostNotFound)
	}
	_, ok = s.store.FindUser(func(u User) bool { return u.ID == input.Author })
	if !ok {
		return Comment{}, xerrors.Errorf("create comment: %w", ErrAuthorNotFound)
	}
	c := Comment{
		ID:     s.newID(),
		Text:   input.Text,
		Author: input.Author,
		Post:   input.Post,
	}
	s.store.InsertComment(c)
	s.bus.Publish(CommentTopic(c.Post), CommentEvent{Comment: c})
	return c, nil
}

// UpdateComment applies the supplied fields of update to the comment
// with the given id. No event is announced.
func (s *Service) UpdateComment(id string, update CommentUpdate) (Comment, error) {
	c, ok := s.store.FindComment(func(c Comment) bool { return c.ID == id })
	if !ok {
		return Comment{}, xerrors.Errorf("update comment: %w", ErrCommentNotFound)
	}
	if update.Text != nil {
		c.Text = *update.Text
	}
	s.store.ReplaceComment(c)
	return c, nil
}

// DeleteComment removes and returns the comment with the given id. No
// event is announced.
func (s *Service) DeleteComment(id string) (Comment, error) {
	removed := s.store.RemoveComments(func(c Comment) bool { return c.ID == id })
	if len(removed) == 0 {
		return Comment{}, xerrors.Errorf("delete comment: %w", ErrCommentNotFound)
	}
	return removed[0], nil
}

// SubscribePosts returns a live subscription to all post lifecycle
// events. The caller must close it when done.
func (s *Service) SubscribePosts() *pubsub.Subscription {
	return s.bus.Subscribe(TopicPost)
}

// SubscribeComments returns a live subscription to comment-created
// events on one post. The post must exist and be published at subscribe
// time; otherwise SubscribeComments fails with ErrPostNotFound. The
// caller must close the subscription when done.
func (s *Service) SubscribeComments(postID string) (*pubsub.Subscription, error) {
	_, ok := s.store.FindPost(func(p Post) bool { return p.ID == postID && p.Published })
	if !ok {
		return nil, xerrors.Errorf("subscribe comments: %w", ErrPostNotFound)
	}
	return s.bus.Subscribe(CommentTopic(postID)), nil
}
