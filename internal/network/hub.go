package network

import (
	"sync"

	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DefaultBuffer - размер личного канала подписчика
const DefaultBuffer = 64

// Broadcaster рассылает ответы сервиса подписчикам (CLI, журнал, тесты)
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> Личный канал
	subscribers map[string]chan api.ServerResponse
	buffer      int
	dropped     int
}

func NewBroadcaster() *Broadcaster {
	return NewBroadcasterSize(DefaultBuffer)
}

func NewBroadcasterSize(buffer int) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		buffer:      max(1, buffer),
	}
}

// Register создает личный канал подписчика. Старый канал с тем же ID закрывается.
func (b *Broadcaster) Register(id string) <-chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, b.buffer)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет сообщение одному подписчику (Unicast)
func (b *Broadcaster) SendTo(id string, msg api.ServerResponse) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	return b.deliver(id, ch, msg)
}

// Broadcast отправляет всем. Переполненные каналы пропускают сообщение.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		b.deliver(id, ch, msg)
	}
}

func (b *Broadcaster) deliver(id string, ch chan api.ServerResponse, msg api.ServerResponse) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped++
		logger.Log.WithFields(logrus.Fields{
			"component":  "broadcaster",
			"subscriber": id,
		}).Debug("Channel full, message dropped")
		return false
	}
}

func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько сообщений потеряно из-за переполнения
func (b *Broadcaster) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// Close отписывает всех
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
