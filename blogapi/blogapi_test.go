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
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"zombiezen.com/go/graphql-server/graphql"

	"zombiezen.com/go/blog-server/blog"
	"zombiezen.com/go/blog-server/pubsub"
)

// newTestAPI returns a service seeded with the tutorial fixture and a
// GraphQL server bound to it.
func newTestAPI(t *testing.T) (*blog.Service, *graphql.Server) {
	t.Helper()
	store := blog.NewStore()
	store.InsertUser(blog.User{ID: "1", Name: "Chris", Email: "chris@example.com"})
	store.InsertUser(blog.User{ID: "2", Name: "Sara", Email: "sara@example.com"})
	store.InsertPost(blog.Post{ID: "1", Title: "What title", Body: "Body of the post this", Published: true, Author: "1"})
	store.InsertPost(blog.Post{ID: "2", Title: "This title", Body: "Body of the post that", Published: false, Author: "1"})
	store.InsertComment(blog.Comment{ID: "11", Text: "Chris is great", Author: "1", Post: "1"})
	svc := blog.NewService(store, pubsub.NewBus())
	srv, err := NewServer(svc)
	if err != nil {
		t.Fatal(err)
	}
	return svc, srv
}

func execute(t *testing.T, srv *graphql.Server, req graphql.Request) graphql.Response {
	t.Helper()
	resp := srv.Execute(context.Background(), req)
	if len(resp.Errors) > 0 {
		t.Fatal(resp.Errors)
	}
	return resp
}

func TestQueryUsers(t *testing.T) {
	_, srv := newTestAPI(t)
	resp := execute(t, srv, graphql.Request{
		Query: `{ users { id name email age } }`,
	})
	want := map[string]interface{}{
		"users": []interface{}{
			map[string]interface{}{"id": "1", "name": "Chris", "email": "chris@example.com", "age": nil},
			map[string]interface{}{"id": "2", "name": "Sara", "email": "sara@example.com", "age": nil},
		},
	}
	if diff := cmp.Diff(want, resp.Data.GoValue(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("users query (-want +got):\n%s", diff)
	}
}

func TestQueryFilter(t *testing.T) {
	_, srv := newTestAPI(t)
	resp := execute(t, srv, graphql.Request{
		Query: `query($q: String) { posts(query: $q) { id } }`,
		Variables: map[string]graphql.Input{
			"q": graphql.ScalarInput("post that"),
		},
	})
	want := map[string]interface{}{
		"posts": []interface{}{
			map[string]interface{}{"id": "2"},
		},
	}
	if diff := cmp.Diff(want, resp.Data.GoValue(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("filtered posts query (-want +got):\n%s", diff)
	}
}

func TestNestedRelations(t *testing.T) {
	_, srv := newTestAPI(t)
	resp := execute(t, srv, graphql.Request{
		Query: `{
			posts {
				id
				published
				author { name }
				comments { text }
			}
		}`,
	})
	want := map[string]interface{}{
		"posts": []interface{}{
			map[string]interface{}{
				"id":        "1",
				"published": "true",
				"author":    map[string]interface{}{"name": "Chris"},
				"comments": []interface{}{
					map[string]interface{}{"text": "Chris is great"},
				},
			},
			map[string]interface{}{
				"id":        "2",
				"published": "false",
				"author":    map[string]interface{}{"name": "Chris"},
				"comments":  []interface{}{},
			},
		},
	}
	if diff := cmp.Diff(want, resp.Data.GoValue(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("nested posts query (-want +got):\n%s", diff)
	}
}

func TestCreateUserMutation(t *testing.T) {
	svc, srv := newTestAPI(t)
	resp := execute(t, srv, graphql.Request{
		Query: `mutation($data: CreateUserInput!) {
			createUser(data: $data) { id name email age }
		}`,
		Variables: map[string]graphql.Input{
			"data": graphql.InputObject(map[string]graphql.Input{
				"name":  graphql.ScalarInput("Rachel"),
				"email": graphql.ScalarInput("rachel@example.com"),
				"age":   graphql.ScalarInput("25"),
			}),
		},
	})
	created := resp.Data.ValueFor("createUser")
	id := created.ValueFor("id").Scalar()
	if id == "" {
		t.Error("createUser returned empty id")
	}
	want := map[string]interface{}{
		"id":    id,
		"name":  "Rachel",
		"email": "rachel@example.com",
		"age":   "25",
	}
	if diff := cmp.Diff(want, created.GoValue()); diff != "" {
		t.Errorf("createUser result (-want +got):\n%s", diff)
	}
	if got := len(svc.Users("")); got != 3 {
		t.Errorf("store has %d users, want 3", got)
	}
}

func TestCreateUserMutationDuplicateEmail(t *testing.T) {
	svc, srv := newTestAPI(t)
	resp := srv.Execute(context.Background(), graphql.Request{
		Query: `mutation {
			createUser(data: {name: "Imposter", email: "chris@example.com"}) { id }
		}`,
	})
	if len(resp.Errors) == 0 {
		t.Fatal("createUser with taken email succeeded")
	}
	if got := resp.Errors[0].Message; !strings.Contains(got, "email taken") {
		t.Errorf("error message %q does not mention the taken email", got)
	}
	if got := len(svc.Users("")); got != 2 {
		t.Errorf("store has %d users after failed mutation, want 2", got)
	}
}

func TestUpdatePostMutationAnnounces(t *testing.T) {
	svc, srv := newTestAPI(t)
	sub := svc.SubscribePosts()
	defer sub.Close()

	execute(t, srv, graphql.Request{
		Query: `mutation {
			updatePost(id: "1", data: {title: "renamed", published: false}) { id published }
		}`,
	})
	got := <-sub.Events()
	// The DELETED event carries the pre-update snapshot.
	want := blog.PostEvent{
		Mutation: blog.MutationDeleted,
		Data:     blog.Post{ID: "1", Title: "What title", Body: "Body of the post this", Published: true, Author: "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("post event (-want +got):\n%s", diff)
	}
}

func TestCreateCommentMutationAnnounces(t *testing.T) {
	svc, srv := newTestAPI(t)
	sub, err := svc.SubscribeComments("1")
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	resp := execute(t, srv, graphql.Request{
		Query: `mutation {
			createComment(data: {text: "hi", author: "2", post: "1"}) { id }
		}`,
	})
	id := resp.Data.ValueFor("createComment").ValueFor("id").Scalar()
	got := <-sub.Events()
	want := blog.CommentEvent{
		Comment: blog.Comment{ID: id, Text: "hi", Author: "2", Post: "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comment event (-want +got):\n%s", diff)
	}
}

func TestCreateCommentMutationOnDraft(t *testing.T) {
	_, srv := newTestAPI(t)
	resp := srv.Execute(context.Background(), graphql.Request{
		Query: `mutation {
			createComment(data: {text: "hi", author: "2", post: "2"}) { id }
		}`,
	})
	if len(resp.Errors) == 0 {
		t.Fatal("createComment on a draft post succeeded")
	}
	if got := resp.Errors[0].Message; !strings.Contains(got, "post not found") {
		t.Errorf("error message %q does not report a missing post", got)
	}
}

func TestDeleteUserMutationCascades(t *testing.T) {
	svc, srv := newTestAPI(t)
	execute(t, srv, graphql.Request{
		Query: `mutation { deleteUser(id: "1") { id } }`,
	})
	if got := ids(svc.Posts("")); len(got) != 0 {
		t.Errorf("posts %v survived deleting their author", got)
	}
	if got := ids(svc.Comments("")); len(got) != 0 {
		t.Errorf("comments %v survived the cascade", got)
	}
	resp := execute(t, srv, graphql.Request{Query: `{ users { id } }`})
	want := map[string]interface{}{
		"users": []interface{}{map[string]interface{}{"id": "2"}},
	}
	if diff := cmp.Diff(want, resp.Data.GoValue(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("surviving users (-want +got):\n%s", diff)
	}
}

func ids(records interface{}) []string {
	var out []string
	switch rs := records.(type) {
	case []blog.Post:
		for _, r := range rs {
			out = append(out, r.ID)
		}
	case []blog.Comment:
		for _, r := range rs {
			out = append(out, r.ID)
		}
	}
	return out
}
