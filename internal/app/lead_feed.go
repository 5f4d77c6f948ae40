package app

import (
	"sync"

	"security-funnel-service/internal/domain"
)

// LeadFeed fans newly created leads out to admin subscribers (the live
// dashboard feed). Subscribers get a small buffer; when one falls behind,
// the oldest pending lead is dropped so a slow client never blocks a
// create request.
type LeadFeed struct {
	mu          sync.Mutex
	subscribers map[chan domain.Lead]struct{}
}

func NewLeadFeed() *LeadFeed {
	return &LeadFeed{
		subscribers: make(map[chan domain.Lead]struct{}),
	}
}

// Subscribe returns a channel of created leads. The caller must invoke
// the returned cancel function to avoid leaks.
func (f *LeadFeed) Subscribe() (<-chan domain.Lead, func()) {
	ch := make(chan domain.Lead, 8)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subscribers[ch]; ok {
			delete(f.subscribers, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers a lead to every subscriber without blocking.
func (f *LeadFeed) Publish(lead domain.Lead) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subscribers {
		select {
		case ch <- lead:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- lead
		}
	}
}
