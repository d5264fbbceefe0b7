package vizserver

import (
	"sync"

	"github.com/google/uuid"
)

// watcherBuffer is how many frames a slow client may lag before frames get dropped for it.
const watcherBuffer = 4

// Watcher is one connected websocket client.
type Watcher struct {
	id     uuid.UUID
	frames chan []byte
}

func (w *Watcher) ID() uuid.UUID { return w.id }

// Frames delivers the encoded snapshots for this client.
func (w *Watcher) Frames() <-chan []byte { return w.frames }

// Hub fans encoded snapshots out to every watcher without ever blocking the producer.
type Hub struct {
	mu       sync.RWMutex
	watchers map[uuid.UUID]*Watcher
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[uuid.UUID]*Watcher)}
}

func (h *Hub) Add() *Watcher {
	w := &Watcher{id: uuid.New(), frames: make(chan []byte, watcherBuffer)}
	h.mu.Lock()
	h.watchers[w.id] = w
	h.mu.Unlock()
	return w
}

func (h *Hub) Remove(id uuid.UUID) {
	h.mu.Lock()
	delete(h.watchers, id)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// Broadcast hands frame to every watcher, skipping those whose buffer is full.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		select {
		case w.frames <- frame:
		default:
			// client busy, skip frame
		}
	}
}
