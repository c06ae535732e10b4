package binding

import (
	"testing"

	"github.com/lumen-ui/lumen/pkg/reactive"
)

func TestTruthyFalsyValues(t *testing.T) {
	falsy := []any{"", 0, 0.0, false, nil, []int{}, []string{}}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("expected %#v to be falsy", v)
		}
	}
}

func TestTruthyTruthyValues(t *testing.T) {
	truthy := []any{"x", 1, -1, 0.5, true, []int{1}, []string{"a", "b"}, struct{}{}}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("expected %#v to be truthy", v)
		}
	}
}

func TestTruthyNilPointer(t *testing.T) {
	var p *int
	if Truthy(p) {
		t.Error("expected nil pointer to be falsy")
	}
	n := 0
	if !Truthy(&n) {
		t.Error("expected non-nil pointer to be truthy")
	}
}

func TestTruthyValuePlain(t *testing.T) {
	v := TruthyValue(Of[any]("hello"))
	if v.IsReactive() {
		t.Error("expected plain output for plain input")
	}
	if !v.Get() {
		t.Error("expected true")
	}
}

func TestTruthyValueReactive(t *testing.T) {
	src := reactive.NewSource[any]([]int{})
	v := TruthyValue(FromAccessor[any](src))

	if !v.IsReactive() {
		t.Fatal("expected reactive output for reactive input")
	}
	if v.Get() {
		t.Error("expected empty slice to coerce to false")
	}

	notifications := 0
	unsub := v.Accessor().Subscribe(func() { notifications++ })
	defer unsub()

	src.Set([]int{1})
	if !v.Get() {
		t.Error("expected non-empty slice to coerce to true")
	}
	if notifications != 1 {
		t.Errorf("expected 1 notification, got %d", notifications)
	}
}
