package viz

import (
	"encoding/json"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/google/uuid"

	"whalehunt/internal/hunt"
)

const (
	subscriberBuffer = 16
	postTimeout      = time.Millisecond
)

// Hub fans encoded frames out to websocket subscribers through a go-notify
// event private to the hub. A subscriber whose buffer stays full for
// postTimeout misses the frame; Publish never blocks the game for longer.
type Hub struct {
	event string

	mu   sync.Mutex
	subs int
	last []byte
}

func NewHub() *Hub {
	return &Hub{event: "viz:frame:" + uuid.NewString()}
}

func (h *Hub) Publish(f hunt.Frame) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = b
	if h.subs == 0 {
		return nil
	}
	return notify.PostTimeout(h.event, b, postTimeout)
}

// Latest returns the last published frame, nil before the first one.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Subscribe registers a subscriber and returns its channel, the frame
// published just before it joined (nil if none) and a cancel func. Values
// on the channel are the []byte JSON frames.
func (h *Hub) Subscribe() (<-chan interface{}, []byte, func()) {
	ch := make(chan interface{}, subscriberBuffer)
	h.mu.Lock()
	notify.Start(h.event, ch)
	h.subs++
	last := h.last
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			notify.Stop(h.event, ch)
			h.subs--
			h.mu.Unlock()
		})
	}
	return ch, last, cancel
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.subs
}
