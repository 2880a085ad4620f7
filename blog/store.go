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

// Store holds the three entity collections in memory for the life of
// the process. Records are kept in insertion order and mutations are
// visible to all subsequent reads. Store performs no validation of its
// own; referential consistency is the Service's job.
//
// The zero value is an empty store ready for use.
type Store struct {
	users    []User
	posts    []Post
	comments []Comment
}

// NewStore returns a new empty store.
func NewStore() *Store {
	return new(Store)
}

// FindUser returns the first user matching pred.
func (s *Store) FindUser(pred func(User) bool) (User, bool) {
	for _, u := range s.users {
		if pred(u) {
			return u, true
		}
	}
	return User{}, false
}

// FilterUsers returns the users matching pred in insertion order.
func (s *Store) FilterUsers(pred func(User) bool) []User {
	var matched []User
	for _, u := range s.users {
		if pred(u) {
			matched = append(matched, u)
		}
	}
	return matched
}

// InsertUser appends u to the user collection.
func (s *Store) InsertUser(u User) {
	s.users = append(s.users, u)
}

// ReplaceUser overwrites the stored user with the same id. It reports
// whether such a user existed.
func (s *Store) ReplaceUser(u User) bool {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return true
		}
	}
	return false
}

// RemoveUsers removes and returns the users matching pred.
func (s *Store) RemoveUsers(pred func(User) bool) []User {
	var removed, kept []User
	for _, u := range s.users {
		if pred(u) {
			removed = append(removed, u)
		} else {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return removed
}

// FindPost returns the first post matching pred.
func (s *Store) FindPost(pred func(Post) bool) (Post, bool) {
	for _, p := range s.posts {
		if pred(p) {
			return p, true
		}
	}
	return Post{}, false
}

// FilterPosts returns the posts matching pred in insertion order.
func (s *Store) FilterPosts(pred func(Post) bool) []Post {
	var matched []Post
	for _, p := range s.posts {
		if pred(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// InsertPost appends p to the post collection.
func (s *Store) InsertPost(p Post) {
	s.posts = append(s.posts, p)
}

// ReplacePost overwrites the stored post with the same id. It reports
// whether such a post existed.
func (s *Store) ReplacePost(p Post) bool {
	for i := range s.posts {
		if s.posts[i].ID == p.ID {
			s.posts[i] = p
			return true
		}
	}
	return false
}

// RemovePosts removes and returns the posts matching pred.
func (s *Store) RemovePosts(pred func(Post) bool) []Post {
	var removed, kept []Post
	for _, p := range s.posts {
		if pred(p) {
			removed = append(removed, p)
		} else {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	return removed
}

// FindComment returns the first comment matching pred.
func (s *Store) FindComment(pred func(Comment) bool) (Comment, bool) {
	for _, c := range s.comments {
		if pred(c) {
			return c, true
		}
	}
	return Comment{}, false
}

// FilterComments returns the comments matching pred in insertion order.
func (s *Store) FilterComments(pred func(Comment) bool) []Comment {
	var matched []Comment
	for _, c := range s.comments {
		if pred(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// InsertComment appends c to the comment collection.
func (s *Store) InsertComment(c Comment) {
	s.comments = append(s.comments, c)
}

// ReplaceComment overwrites the stored comment with the same id. It
// reports whether such a comment existed.
func (s *Store) ReplaceComment(c Comment) bool {
	for i := range s.comments {
		if s.comments[i].ID == c.ID {
			s.comments[i] = c
			return true
		}
	}
	return false
}

// RemoveComments removes and returns the comments matching pred.
func (s *Store) RemoveComments(pred func(Comment) bool) []Comment {
	var removed, kept []Comment
	for _, c := range s.comments {
		if pred(c) {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return removed
}
