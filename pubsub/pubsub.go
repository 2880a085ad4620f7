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

// Package pubsub provides an in-process, topic-addressed notification
// bus. Publishing delivers a payload to every current subscriber of the
// topic; each subscription yields payloads in publish order through an
// unbounded queue, so a slow consumer never blocks a publisher.
package pubsub

import "sync"

// Bus routes published payloads to topic subscribers. The zero value is
// not usable; call NewBus.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]*Subscription
}

// NewBus returns a new bus with no subscribers.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]*Subscription)}
}

// Publish delivers payload to every subscription currently attached to
// topic. Payloads arrive at each subscription in the order they were
// published; no ordering holds across distinct topics. Publishing to a
// topic with no subscribers discards the payload.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs[topic] {
		s.in <- payload
	}
}

// Subscribe attaches a new subscription to topic. The subscription
// receives every payload published to the topic from now until it is
// closed.
func (b *Bus) Subscribe(topic string) *Subscription {
	s := &Subscription{
		bus:   b,
		topic: topic,
		in:    make(chan interface{}),
		out:   make(chan interface{}),
		quit:  make(chan struct{}),
	}
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], s)
	b.mu.Unlock()
	go s.pump()
	return s
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[s.topic]
	for i, other := range list {
		if other == s {
			b.subs[s.topic] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[s.topic]) == 0 {
		delete(b.subs, s.topic)
	}
	// Closing quit under the lock guarantees no Publish is mid-send on
	// s.in when the pump stops.
	close(s.quit)
}

// A Subscription is a live, order-preserving stream of payloads on a
// single topic.
type Subscription struct {
	bus   *Bus
	topic string
	in    chan interface{}
	out   chan interface{}
	quit  chan struct{}
	once  sync.Once
}

// Topic returns the topic the subscription is attached to.
func (s *Subscription) Topic() string {
	return s.topic
}

// Events returns the channel the subscription's payloads arrive on. The
// channel is closed when the subscription is closed; payloads still
// queued at that point are discarded.
func (s *Subscription) Events() <-chan interface{} {
	return s.out
}

// Close detaches the subscription from its bus and closes the Events
// channel. Close is idempotent.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.remove(s)
	})
}

// pump moves payloads from the bus to the consumer, buffering without
// bound so Publish never waits on the consumer.
func (s *Subscription) pump() {
	var queue []interface{}
	for {
		var out chan<- interface{}
		var next interface{}
		if len(queue) > 0 {
			out = s.out
			next = queue[0]
		}
		select {
		case payload := <-s.in:
			queue = append(queue, payload)
		case out <- next:
			queue = queue[1:]
		case <-s.quit:
			close(s.out)
			return
		}
	}
}
