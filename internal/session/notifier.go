package session

import "sync"

// Notifier broadcasts identity changes to subscribers. The wizard subscribes
// so its reset-on-identity-change rule is an explicit observer rather than a
// side effect of shared state.
type Notifier struct {
	mu          sync.Mutex
	subscribers []func(*Identity)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback invoked on every identity change. A nil
// identity means logout.
func (n *Notifier) Subscribe(fn func(*Identity)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Publish notifies all subscribers of the new identity.
func (n *Notifier) Publish(id *Identity) {
	n.mu.Lock()
	subs := make([]func(*Identity), len(n.subscribers))
	copy(subs, n.subscribers)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
}
