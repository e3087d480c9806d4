// Copyright 2025 go-diffsharp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"
	"sync"

	"github.com/ajroetker/go-diffsharp/wword"
)

// Queue is a bounded FIFO of words between two stages. It has exactly one
// producer and one consumer.
//
// Push blocks while the queue is full and Pop blocks while it is empty and
// not closed. After Close, Pop drains the remaining words and then reports
// ok == false.
type Queue struct {
	name      string
	ch        chan wword.Word
	limit     int
	pushed    int // producer-owned
	closeOnce sync.Once
}

// NewQueue returns a queue holding up to depth words that accepts at most
// limit pushes in total. name identifies the producing stage in errors.
func NewQueue(name string, depth, limit int) *Queue {
	return &Queue{
		name:  name,
		ch:    make(chan wword.Word, max(depth, 1)),
		limit: limit,
	}
}

// Push appends w, blocking while the queue is full. Pushing more than limit
// words returns a *ContractError.
func (q *Queue) Push(ctx context.Context, w wword.Word) error {
	if q.pushed >= q.limit {
		return &ContractError{Stage: q.name, Index: q.pushed, Reason: "write past end of stream"}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case q.ch <- w:
		q.pushed++
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop removes the oldest word. ok is false once the queue is closed and
// drained.
func (q *Queue) Pop(ctx context.Context) (w wword.Word, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return wword.Word{}, false, err
	}
	select {
	case w, ok = <-q.ch:
		return w, ok, nil
	case <-ctx.Done():
		return wword.Word{}, false, ctx.Err()
	}
}

// Close marks the end of the stream. Safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.ch)
	})
}

// Len returns the number of buffered words.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue depth.
func (q *Queue) Cap() int {
	return cap(q.ch)
}

// Pushed returns the number of words pushed so far. Only the producer may
// call it.
func (q *Queue) Pushed() int {
	return q.pushed
}
