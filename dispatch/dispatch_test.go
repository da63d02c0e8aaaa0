/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dispatch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dirpx.dev/shapes/dispatch"
)

// TestMain ensures no goroutines leak from queue runs or spawned tasks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInline_RunsOnCaller(t *testing.T) {
	ran := false
	dispatch.Inline.Execute(func() { ran = true })
	assert.True(t, ran)
}

func TestSpawn_RunsAsync(t *testing.T) {
	done := make(chan struct{})
	dispatch.Spawn.Execute(func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("spawned task did not run")
	}
}

func TestQueue_RunsInOrderOnRunGoroutine(t *testing.T) {
	q := dispatch.NewQueue()

	var got []int
	const n = 100
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Execute(func() { got = append(got, i) })
		}
		q.Close()
	}()

	// got is only touched by tasks, which all run here.
	require.NoError(t, q.Run(context.Background()))
	wg.Wait()

	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestQueue_CloseFromTask(t *testing.T) {
	q := dispatch.NewQueue()
	calls := 0
	q.Execute(func() { calls++ })
	q.Execute(func() { calls++; q.Close() })

	require.NoError(t, q.Run(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestQueue_ExecuteAfterCloseRunsInline(t *testing.T) {
	q := dispatch.NewQueue()
	q.Close()
	q.Close() // idempotent

	ran := false
	q.Execute(func() { ran = true })
	assert.True(t, ran)
	assert.Zero(t, q.Len())
}

func TestQueue_ContextCancelKeepsPending(t *testing.T) {
	q := dispatch.NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing queued: Run must return promptly with the context error.
	err := q.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	q.Execute(func() {})
	assert.Equal(t, 1, q.Len())

	q.Close()
	require.NoError(t, q.Run(context.Background()))
	assert.Zero(t, q.Len())
}

func TestQueue_SecondRunRejected(t *testing.T) {
	q := dispatch.NewQueue()
	started := make(chan struct{})
	release := make(chan struct{})
	q.Execute(func() {
		close(started)
		<-release
	})

	errc := make(chan error, 1)
	go func() { errc <- q.Run(context.Background()) }()

	<-started
	require.ErrorIs(t, q.Run(context.Background()), dispatch.ErrRunning)

	close(release)
	q.Close()
	require.NoError(t, <-errc)
}

func TestQueue_NilTaskIgnored(t *testing.T) {
	q := dispatch.NewQueue()
	q.Execute(nil)
	assert.Zero(t, q.Len())
}

func TestFunc_Adapter(t *testing.T) {
	var seen int
	exec := dispatch.Func(func(fn func()) {
		seen++
		fn()
	})
	ran := false
	exec.Execute(func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, 1, seen)
}
