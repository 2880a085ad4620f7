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

package main

import "zombiezen.com/go/blog-server/blog"

// seed fills store with a small fixture of users, posts, and comments
// for poking at the API without issuing mutations first.
func seed(store *blog.Store) {
	age := int32(32)
	store.InsertUser(blog.User{ID: "1", Name: "Chris", Email: "chris@example.com", Age: &age})
	store.InsertUser(blog.User{ID: "2", Name: "Sara", Email: "sara@example.com", Age: &age})
	store.InsertUser(blog.User{ID: "3", Name: "Rachel", Email: "rachel@example.com", Age: &age})

	store.InsertPost(blog.Post{ID: "1", Title: "What title", Body: "Body of the post this", Published: true, Author: "1"})
	store.InsertPost(blog.Post{ID: "2", Title: "This title", Body: "Body of the post that", Published: false, Author: "1"})
	store.InsertPost(blog.Post{ID: "3", Title: "No titles", Body: "Body of the post what", Published: true, Author: "2"})

	store.InsertComment(blog.Comment{ID: "11", Text: "Chris is great", Author: "1", Post: "1"})
	store.InsertComment(blog.Comment{ID: "12", Text: "Sara is awesome", Author: "2", Post: "3"})
	store.InsertComment(blog.Comment{ID: "13", Text: "Rachel is annoying", Author: "3", Post: "2"})
}
