package reactive

import "testing"

func TestMapTransformsValue(t *testing.T) {
	count := NewSource(3)
	doubled := Map[int, int](count, func(n int) int { return n * 2 })

	if doubled.Get() != 6 {
		t.Errorf("expected 6, got %d", doubled.Get())
	}

	count.Set(5)
	if doubled.Get() != 10 {
		t.Errorf("expected 10 after upstream change, got %d", doubled.Get())
	}
}

func TestMapNotifiesOnUpstreamChange(t *testing.T) {
	count := NewSource(1)
	squared := Map[int, int](count, func(n int) int { return n * n })

	notifications := 0
	unsub := squared.Subscribe(func() { notifications++ })
	defer unsub()

	count.Set(2)
	count.Set(3)

	if notifications != 2 {
		t.Errorf("expected 2 notifications, got %d", notifications)
	}
}

func TestDerivedAttachesLazily(t *testing.T) {
	attached := 0
	detached := 0

	value := 0
	d := NewDerived(
		func() int { return value },
		func(invalidate func()) func() {
			attached++
			return func() { detached++ }
		},
	)

	// No subscriber yet, so no upstream attachment
	_ = d.Get()
	if attached != 0 {
		t.Errorf("expected no attach before first subscriber, got %d", attached)
	}

	unsubA := d.Subscribe(func() {})
	unsubB := d.Subscribe(func() {})
	if attached != 1 {
		t.Errorf("expected single attach for two subscribers, got %d", attached)
	}

	// Detach happens only after the last subscriber leaves
	unsubA()
	if detached != 0 {
		t.Errorf("expected no detach while subscribers remain, got %d", detached)
	}
	unsubB()
	if detached != 1 {
		t.Errorf("expected detach after last unsubscribe, got %d", detached)
	}
}

func TestDerivedReattachesAfterDetach(t *testing.T) {
	attached := 0
	d := NewDerived(
		func() int { return 0 },
		func(invalidate func()) func() {
			attached++
			return func() {}
		},
	)

	unsub := d.Subscribe(func() {})
	unsub()

	unsub = d.Subscribe(func() {})
	defer unsub()

	if attached != 2 {
		t.Errorf("expected re-attach on new subscriber, got %d attaches", attached)
	}
}

func TestDerivedInvalidatePropagates(t *testing.T) {
	value := 1
	d := NewDerived(func() int { return value }, nil)

	notifications := 0
	unsub := d.Subscribe(func() { notifications++ })
	defer unsub()

	value = 2
	d.Invalidate()

	if notifications != 1 {
		t.Errorf("expected 1 notification, got %d", notifications)
	}
	if d.Get() != 2 {
		t.Errorf("expected 2, got %d", d.Get())
	}
}

func TestMapChain(t *testing.T) {
	count := NewSource(2)
	doubled := Map[int, int](count, func(n int) int { return n * 2 })
	asString := Map[int, string](doubled, func(n int) string {
		if n >= 10 {
			return "big"
		}
		return "small"
	})

	notifications := 0
	unsub := asString.Subscribe(func() { notifications++ })
	defer unsub()

	if asString.Get() != "small" {
		t.Errorf("expected small, got %q", asString.Get())
	}

	count.Set(6)
	if asString.Get() != "big" {
		t.Errorf("expected big, got %q", asString.Get())
	}
	if notifications != 1 {
		t.Errorf("expected 1 notification, got %d", notifications)
	}
}
