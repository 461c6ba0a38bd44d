package server

import (
	"encoding/json"
	"sync"
)

// GameEvent is the payload pushed to SSE subscribers: achievement
// toasts, milestone advances and rebirth announcements.
type GameEvent struct {
	Type            string  `json:"type"`
	AchievementID   string  `json:"achievementId,omitempty"`
	AchievementName string  `json:"achievementName,omitempty"`
	MilestoneIndex  int     `json:"milestoneIndex,omitempty"`
	LicensesGranted int     `json:"licensesGranted,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
}

// Broker is an in-process pub/sub for the single game event stream.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan []byte]struct{})}
}

// Subscribe returns a channel receiving JSON-encoded game events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish fans the event out to all subscribers, dropping frames for
// slow ones.
func (b *Broker) Publish(event GameEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
		}
	}
	b.mu.RUnlock()
}
