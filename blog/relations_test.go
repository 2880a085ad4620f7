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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"zombiezen.com/go/blog-server/pubsub"
)

// fixture builds the store from the tutorial data set: three users,
// three posts (one draft), one comment on each post.
func fixture() *Service {
	store := NewStore()
	store.InsertUser(User{ID: "1", Name: "Chris", Email: "chris@example.com"})
	store.InsertUser(User{ID: "2", Name: "Sara", Email: "sara@example.com"})
	store.InsertUser(User{ID: "3", Name: "Rachel", Email: "rachel@example.com"})
	store.InsertPost(Post{ID: "1", Title: "What title", Body: "Body of the post this", Published: true, Author: "1"})
	store.InsertPost(Post{ID: "2", Title: "This title", Body: "Body of the post that", Published: false, Author: "1"})
	store.InsertPost(Post{ID: "3", Title: "No titles", Body: "Body of the post what", Published: true, Author: "2"})
	store.InsertComment(Comment{ID: "11", Text: "Chris is great", Author: "1", Post: "1"})
	store.InsertComment(Comment{ID: "12", Text: "Sara is awesome", Author: "2", Post: "3"})
	store.InsertComment(Comment{ID: "13", Text: "Rachel is annoying", Author: "3", Post: "2"})
	return NewService(store, pubsub.NewBus())
}

func ids(records interface{}) []string {
	var out []string
	switch rs := records.(type) {
	case []User:
		for _, r := range rs {
			out = append(out, r.ID)
		}
	case []Post:
		for _, r := range rs {
			out = append(out, r.ID)
		}
	case []Comment:
		for _, r := range rs {
			out = append(out, r.ID)
		}
	}
	return out
}

func TestUsersFilter(t *testing.T) {
	svc := fixture()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"ra", []string{"2", "3"}},
		{"RA", []string{"2", "3"}},
		{"chris", []string{"1"}},
		{"zzz", nil},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, ids(svc.Users(test.query))); diff != "" {
			t.Errorf("Users(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestPostsFilter(t *testing.T) {
	svc := fixture()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"title", []string{"1", "2", "3"}}, // matches on title
		{"post what", []string{"3"}},       // matches on body
		{"THIS", []string{"1", "2"}},       // case-insensitive, title or body
		{"nothing here", nil},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, ids(svc.Posts(test.query))); diff != "" {
			t.Errorf("Posts(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestCommentsFilter(t *testing.T) {
	svc := fixture()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"11", "12", "13"}},
		{"awesome", []string{"12"}},
		{"IS", []string{"11", "12", "13"}},
		{"13", []string{"13"}}, // exact id match
		{"zzz", nil},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, ids(svc.Comments(test.query))); diff != "" {
			t.Errorf("Comments(%q) (-want +got):\n%s", test.query, diff)
		}
	}
}

func TestRelations(t *testing.T) {
	svc := fixture()
	post := svc.Posts("")[0]
	user := svc.Users("")[0]
	comment := svc.Comments("")[2]

	author, err := svc.PostAuthor(post)
	if err != nil {
		t.Errorf("PostAuthor: %v", err)
	} else if author.ID != "1" {
		t.Errorf("PostAuthor = %q, want 1", author.ID)
	}
	if diff := cmp.Diff([]string{"11"}, ids(svc.PostComments(post))); diff != "" {
		t.Errorf("PostComments (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2"}, ids(svc.UserPosts(user))); diff != "" {
		t.Errorf("UserPosts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"11"}, ids(svc.UserComments(user))); diff != "" {
		t.Errorf("UserComments (-want +got):\n%s", diff)
	}
	author, err = svc.CommentAuthor(comment)
	if err != nil {
		t.Errorf("CommentAuthor: %v", err)
	} else if author.ID != "3" {
		t.Errorf("CommentAuthor = %q, want 3", author.ID)
	}
	p, err := svc.CommentPost(comment)
	if err != nil {
		t.Errorf("CommentPost: %v", err)
	} else if p.ID != "2" {
		t.Errorf("CommentPost = %q, want 2", p.ID)
	}
}

func TestRelationsNotFound(t *testing.T) {
	svc := fixture()
	if _, err := svc.PostAuthor(Post{ID: "x", Author: "nope"}); !xerrors.Is(err, ErrUserNotFound) {
		t.Errorf("PostAuthor with dangling author: got %v, want ErrUserNotFound", err)
	}
	if _, err := svc.CommentAuthor(Comment{ID: "x", Author: "nope"}); !xerrors.Is(err, ErrUserNotFound) {
		t.Errorf("CommentAuthor with dangling author: got %v, want ErrUserNotFound", err)
	}
	if _, err := svc.CommentPost(Comment{ID: "x", Post: "nope"}); !xerrors.Is(err, ErrPostNotFound) {
		t.Errorf("CommentPost with dangling post: got %v, want ErrPostNotFound", err)
	}
}
