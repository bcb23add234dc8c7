package bus

import "testing"

func TestSubscribeAndEmitOrder(t *testing.T) {
	b := New()
	var order []string
	if _, err := b.Subscribe(Saved, func(Payload) { order = append(order, "first") }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if _, err := b.Subscribe(Saved, func(Payload) { order = append(order, "second") }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	b.Emit(Saved, nil)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected in-order delivery, got %v", order)
	}
}

func TestSubscribeUnknownChannel(t *testing.T) {
	b := New()
	if _, err := b.Subscribe(Channel("bogus"), func(Payload) {}); err == nil {
		t.Fatalf("expected error for unknown channel")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	id, err := b.Subscribe(Opened, func(Payload) { calls++ })
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	b.Emit(Opened, nil)
	b.Unsubscribe(Opened, id)
	b.Emit(Opened, nil)
	if calls != 1 {
		t.Fatalf("expected one delivery, got %d", calls)
	}
}

func TestEmitAugmentsPayloadWithSnapshot(t *testing.T) {
	b := New()
	b.SetSnapshot(func() (string, interface{}) { return "email", map[string]string{"url": "/users/1"} })
	var got Payload
	if _, err := b.Subscribe(Clicked, func(p Payload) { got = p }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	b.Emit(Clicked, Payload{"x": 1})
	if got["field"] != "email" {
		t.Fatalf("expected field augmentation, got %#v", got)
	}
	if got["x"] != 1 {
		t.Fatalf("expected original payload preserved, got %#v", got)
	}
}

func TestEmitKeepsExplicitFieldOverAugmentation(t *testing.T) {
	b := New()
	b.SetSnapshot(func() (string, interface{}) { return "", nil })
	var got Payload
	if _, err := b.Subscribe(Closed, func(p Payload) { got = p }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	b.Emit(Closed, Payload{"field": "email", "reason": "saved"})
	if got["field"] != "email" {
		t.Fatalf("expected explicit field kept, got %#v", got)
	}
}

func TestPanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	b := New()
	called := false
	if _, err := b.Subscribe(Error, func(Payload) { panic("boom") }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if _, err := b.Subscribe(Error, func(Payload) { called = true }); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	b.Emit(Error, nil)
	if !called {
		t.Fatalf("expected delivery to continue after panic")
	}
}
