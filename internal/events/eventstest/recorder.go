// Package eventstest provides an in-memory events.Publisher for tests.
package eventstest

import (
	"context"
	"sync"
)

type Event struct {
	Topic string
	Key   string
	Body  map[string]any
}

type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	body, _ := event.(map[string]any)
	r.events = append(r.events, Event{Topic: topic, Key: key, Body: body})
	return r.Err
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the "type" field of every recorded event in order.
func (r *Recorder) Types() []string {
	var out []string
	for _, e := range r.Events() {
		t, _ := e.Body["type"].(string)
		out = append(out, t)
	}
	return out
}
