package binding

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/object"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

func TestConstructAssignsPlainAndReactive(t *testing.T) {
	obj := object.New()
	b := reactive.NewSource(2)

	releases := Construct(obj, map[string]Value[any]{
		"a": Of[any](1),
		"b": FromAccessor(reactive.Map[int, any](b, func(n int) any { return n })),
	})
	defer releaseAll(releases)

	if v, _ := obj.Get("a"); v != 1 {
		t.Errorf("expected a=1, got %v", v)
	}
	if v, _ := obj.Get("b"); v != 2 {
		t.Errorf("expected b=2, got %v", v)
	}

	// Updating the accessor re-assigns the property
	b.Set(3)
	if v, _ := obj.Get("b"); v != 3 {
		t.Errorf("expected b=3 after update, got %v", v)
	}
}

func TestConstructSkipsNilEntries(t *testing.T) {
	obj := object.New()

	releases := Construct(obj, map[string]Value[any]{
		"present": Of[any]("x"),
		"absent":  Of[any](nil),
	})
	defer releaseAll(releases)

	if obj.Has("absent") {
		t.Error("expected nil-valued prop to be skipped")
	}
	if !obj.Has("present") {
		t.Error("expected non-nil prop to be assigned")
	}
}

func TestConstructEmitsNotifyOnReassignment(t *testing.T) {
	obj := object.New()
	src := reactive.NewSource[any]("audio")

	notifications := 0
	obj.Connect(object.NotifySignal("iconName"), func(...any) { notifications++ })

	releases := Construct(obj, map[string]Value[any]{
		"iconName": FromAccessor[any](src),
	})
	defer releaseAll(releases)

	initial := notifications
	src.Set("video")

	if notifications != initial+1 {
		t.Errorf("expected notify signal per re-assignment, got %d after initial %d", notifications, initial)
	}
}

func TestConstructReleaseStopsReassignment(t *testing.T) {
	obj := object.New()
	src := reactive.NewSource[any](1)

	releases := Construct(obj, map[string]Value[any]{
		"n": FromAccessor[any](src),
	})
	releaseAll(releases)

	src.Set(2)
	if v, _ := obj.Get("n"); v != 1 {
		t.Errorf("expected value frozen after release, got %v", v)
	}
}

func TestConstructOnStructPointer(t *testing.T) {
	type widget struct {
		Label string
		Width int
	}

	w := &widget{}
	src := reactive.NewSource[any](100)

	releases := Construct(w, map[string]Value[any]{
		"Label": Of[any]("play"),
		"Width": FromAccessor[any](src),
	})
	defer releaseAll(releases)

	if w.Label != "play" || w.Width != 100 {
		t.Errorf("unexpected struct state: %+v", w)
	}

	src.Set(200)
	if w.Width != 200 {
		t.Errorf("expected Width=200 after update, got %d", w.Width)
	}
}

func TestConstructUnknownFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown field")
		}
	}()

	type widget struct{ Label string }
	Construct(&widget{}, map[string]Value[any]{
		"Nope": Of[any](1),
	})
}

func releaseAll(releases []func()) {
	for _, release := range releases {
		release()
	}
}
