// Package bus implements the fixed-channel lifecycle bus that edit sessions
// publish to. Third-party listeners attach and detach here without the
// controller knowing about them.
package bus

import (
	"fmt"

	"github.com/fieldpad/fieldpad/internal/logging"
)

// Channel names one of the fixed lifecycle channels.
type Channel string

const (
	Opened   Channel = "opened"
	Clicked  Channel = "clicked"
	Save     Channel = "save"
	Saved    Channel = "saved"
	Cancel   Channel = "cancel"
	Rejected Channel = "rejected"
	Error    Channel = "error"
	Closed   Channel = "closed"
)

// Channels lists every valid channel.
func Channels() []Channel {
	return []Channel{Opened, Clicked, Save, Saved, Cancel, Rejected, Error, Closed}
}

// Payload carries event data. Emit fills in "field" and "data" from the
// current session snapshot unless the payload already supplies them.
type Payload map[string]interface{}

// HandlerFunc receives a copy of the emitted payload.
type HandlerFunc func(Payload)

// SnapshotFunc reports the active field name and its session snapshot.
// Empty name means no active session.
type SnapshotFunc func() (string, interface{})

// Subscription identifies a registered handler for later removal.
type Subscription int

// Bus dispatches lifecycle events synchronously, in subscription order.
type Bus struct {
	snapshot SnapshotFunc
	subs     map[Channel][]entry
	nextID   Subscription
}

type entry struct {
	id Subscription
	fn HandlerFunc
}

// New creates an empty bus. The snapshot function may be nil until the
// controller installs one via SetSnapshot.
func New() *Bus {
	return &Bus{subs: make(map[Channel][]entry), nextID: 1}
}

// SetSnapshot installs the session snapshot provider used to augment payloads.
func (b *Bus) SetSnapshot(fn SnapshotFunc) {
	b.snapshot = fn
}

// Subscribe registers fn on the given channel and returns its subscription
// token. Unknown channels are rejected.
func (b *Bus) Subscribe(ch Channel, fn HandlerFunc) (Subscription, error) {
	if fn == nil {
		return 0, fmt.Errorf("bus: nil handler for channel %q", ch)
	}
	if !validChannel(ch) {
		return 0, fmt.Errorf("bus: unknown channel %q", ch)
	}
	id := b.nextID
	b.nextID++
	b.subs[ch] = append(b.subs[ch], entry{id: id, fn: fn})
	return id, nil
}

// Unsubscribe removes a previously registered handler. Removing an unknown
// subscription is a no-op.
func (b *Bus) Unsubscribe(ch Channel, id Subscription) {
	entries := b.subs[ch]
	for i, e := range entries {
		if e.id == id {
			b.subs[ch] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Emit delivers payload to every subscriber of ch in registration order.
// A panicking subscriber is logged and skipped; later subscribers on the
// same emission still run.
func (b *Bus) Emit(ch Channel, payload Payload) {
	if !validChannel(ch) {
		logging.Error(fmt.Errorf("bus: emit on unknown channel %q", ch))
		return
	}
	out := make(Payload, len(payload)+2)
	for k, v := range payload {
		out[k] = v
	}
	if b.snapshot != nil {
		name, data := b.snapshot()
		if _, ok := out["field"]; !ok {
			out["field"] = name
		}
		if _, ok := out["data"]; !ok {
			out["data"] = data
		}
	}
	for _, e := range b.subs[ch] {
		deliver(ch, e.fn, out)
	}
}

func deliver(ch Channel, fn HandlerFunc, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("bus: subscriber panic on %q: %v", ch, r))
		}
	}()
	fn(payload)
}

func validChannel(ch Channel) bool {
	switch ch {
	case Opened, Clicked, Save, Saved, Cancel, Rejected, Error, Closed:
		return true
	}
	return false
}
