package repository

import "sync"

// notifier fans out change notifications to subscribers. Sends are
// non-blocking: a subscriber that has not drained its channel still has a
// notification pending, which is enough for recompute-on-change consumers.
type notifier struct {
	mu   sync.Mutex
	subs map[<-chan struct{}]chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[<-chan struct{}]chan struct{})}
}

func (n *notifier) subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan struct{}, 1)
	n.subs[ch] = ch
	return ch
}

func (n *notifier) unsubscribe(ch <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if sub, ok := n.subs[ch]; ok {
		delete(n.subs, ch)
		close(sub)
	}
}

func (n *notifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		select {
		case sub <- struct{}{}:
		default:
		}
	}
}
