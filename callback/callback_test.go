package callback_test

import (
	"bytes"
	"log/slog"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/foundation/callback"
)

type listener struct {
	name     string
	received []string
}

func (l *listener) OnEvent(v string) {
	l.received = append(l.received, l.name+":"+v)
}

func TestCallback_Register(t *testing.T) {
	c := callback.New[int]()

	var got []int
	first := c.Register(func(v int) { got = append(got, v) })
	second := c.Register(func(v int) { got = append(got, v*10) })

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(first))

	c.Call(3)
	assert.Equal(t, []int{3, 30}, got, "registrations run in order")
}

func TestCallback_Unregister(t *testing.T) {
	c := callback.New[int]()

	calls := 0
	id := c.Register(func(int) { calls++ })

	assert.True(t, c.Unregister(id))
	assert.False(t, c.Unregister(id))
	assert.False(t, c.Contains(id))

	c.Call(1)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, c.Len())
}

func TestCallback_Clear(t *testing.T) {
	c := callback.New[int]()
	c.Register(func(int) {})
	c.Register(func(int) {})

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCallback_RegisterMethod(t *testing.T) {
	c := callback.New[string]()
	l := &listener{name: "a"}

	id := callback.RegisterMethod(c, l, (*listener).OnEvent)
	c.Call("x")
	c.Call("y")

	assert.Equal(t, []string{"a:x", "a:y"}, l.received)
	assert.True(t, c.Contains(id))
	runtime.KeepAlive(l)
}

func TestCallback_RegisterMethodDoesNotKeepOwnerAlive(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := callback.New[string](callback.WithLogger(logger))

	strong := 0
	c.Register(func(string) { strong++ })

	id := registerTemporary(c)
	require.Equal(t, 2, c.Len())

	require.Eventually(t, func() bool {
		runtime.GC()
		return !c.Contains(id)
	}, 5*time.Second, 10*time.Millisecond)

	c.Call("event")
	assert.Equal(t, 1, strong)
	assert.Equal(t, 1, c.Len())
	assert.Contains(t, buf.String(), "pruned dead callbacks")
}

// registerTemporary subscribes a listener that becomes unreachable as soon
// as it returns.
//
//go:noinline
func registerTemporary(c *callback.Callback[string]) callback.ID {
	l := &listener{name: "temporary", received: make([]string, 0, 4)}
	return callback.RegisterMethod(c, l, (*listener).OnEvent)
}

func TestCallback_ReentrantRegistration(t *testing.T) {
	c := callback.New[int]()

	var inner int
	var selfID callback.ID
	selfID = c.Register(func(int) {
		c.Register(func(int) { inner++ })
		c.Unregister(selfID)
	})

	c.Call(1)
	assert.Equal(t, 0, inner, "registrations added during a call run from the next call")
	assert.Equal(t, 1, c.Len())

	c.Call(2)
	assert.Equal(t, 1, inner)
}

func TestCallback_Concurrent(t *testing.T) {
	c := callback.New[int]()

	var mu sync.Mutex
	total := 0
	c.Register(func(v int) {
		mu.Lock()
		total += v
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := c.Register(func(int) {})
			c.Call(1)
			c.Unregister(id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, total)
	assert.Equal(t, 1, c.Len())
}
