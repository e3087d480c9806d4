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
	"errors"
	"testing"
	"time"

	"github.com/ajroetker/go-diffsharp/wword"
)

func laneWord(v uint8) wword.Word {
	w := wword.NewWord(4)
	w.SetLane(0, v)
	return w
}

func TestQueueFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewQueue("test", 4, 4)
	for i := 0; i < 4; i++ {
		if err := q.Push(ctx, laneWord(uint8(i))); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	if q.Len() != 4 || q.Cap() != 4 || q.Pushed() != 4 {
		t.Errorf("Len=%d Cap=%d Pushed=%d, want 4 4 4", q.Len(), q.Cap(), q.Pushed())
	}
	q.Close()
	for i := 0; i < 4; i++ {
		w, ok, err := q.Pop(ctx)
		if err != nil || !ok {
			t.Fatalf("Pop(%d): ok=%v err=%v", i, ok, err)
		}
		if got := w.Lane(0); got != uint8(i) {
			t.Errorf("Pop(%d): got %d, want %d", i, got, i)
		}
	}
	if _, ok, err := q.Pop(ctx); ok || err != nil {
		t.Errorf("Pop on drained queue: ok=%v err=%v, want false, nil", ok, err)
	}
	q.Close()
}

func TestQueuePushPastLimit(t *testing.T) {
	ctx := context.Background()
	q := NewQueue("posterize", 8, 2)
	for i := 0; i < 2; i++ {
		if err := q.Push(ctx, laneWord(0)); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	err := q.Push(ctx, laneWord(0))
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("Push past limit: got %v, want *ContractError", err)
	}
	if ce.Stage != "posterize" || ce.Index != 2 {
		t.Errorf("ContractError = %+v", ce)
	}
	if !errors.Is(err, ErrContract) {
		t.Error("ContractError does not wrap ErrContract")
	}
}

func TestQueueBackpressure(t *testing.T) {
	q := NewQueue("test", 1, 10)
	if err := q.Push(context.Background(), laneWord(1)); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Push(ctx, laneWord(2)); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Push on full queue: got %v, want DeadlineExceeded", err)
	}
	if q.Pushed() != 1 {
		t.Errorf("Pushed() = %d, want 1", q.Pushed())
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := NewQueue("test", 2, 2)
	done := make(chan uint8)
	go func() {
		w, ok, err := q.Pop(context.Background())
		if err != nil || !ok {
			close(done)
			return
		}
		done <- w.Lane(0)
	}()
	if err := q.Push(context.Background(), laneWord(9)); err != nil {
		t.Fatal(err)
	}
	if got := <-done; got != 9 {
		t.Errorf("Pop: got %d, want 9", got)
	}
}

func TestQueueCanceledPop(t *testing.T) {
	q := NewQueue("test", 2, 2)
	if err := q.Push(context.Background(), laneWord(1)); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := q.Pop(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Pop: got %v, want context.Canceled", err)
	}
}
