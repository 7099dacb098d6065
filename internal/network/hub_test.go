package network

import (
	"os"
	"sync"
	"testing"

	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterAndSend(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("cli")

	assert.True(t, b.HasSubscriber("cli"))
	assert.Equal(t, 1, b.SubscriberCount())

	ok := b.SendTo("cli", api.ServerResponse{Type: "UPDATE", Tick: 3})
	require.True(t, ok)
	msg := <-ch
	assert.Equal(t, 3, msg.Tick)

	assert.False(t, b.SendTo("ghost", api.ServerResponse{}))
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	_, open := <-old
	assert.False(t, open, "old channel must be closed")

	b.Broadcast(api.ServerResponse{Type: "UPDATE"})
	msg := <-fresh
	assert.Equal(t, "UPDATE", msg.Type)
	assert.Equal(t, 1, b.SubscriberCount())
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")
	b.Unregister("a")
	b.Unregister("a")

	_, open := <-ch
	assert.False(t, open)
	assert.False(t, b.HasSubscriber("a"))
}

func TestBroadcaster_FullChannelDrops(t *testing.T) {
	b := NewBroadcasterSize(1)
	ch := b.Register("slow")

	b.Broadcast(api.ServerResponse{Tick: 1})
	b.Broadcast(api.ServerResponse{Tick: 2})

	assert.Equal(t, 1, b.Dropped())
	msg := <-ch
	assert.Equal(t, 1, msg.Tick)
}

func TestBroadcaster_Concurrent(t *testing.T) {
	b := NewBroadcasterSize(1000)
	chA := b.Register("a")
	chB := b.Register("b")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Broadcast(api.ServerResponse{Tick: i})
		}(i)
	}
	wg.Wait()

	assert.Len(t, chA, 10)
	assert.Len(t, chB, 10)

	b.Close()
	assert.Zero(t, b.SubscriberCount())
}
