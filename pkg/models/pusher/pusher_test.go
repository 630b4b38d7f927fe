package pusher

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestPushAll(t *testing.T) {
	var pushed [][]int
	p := NewPusher(
		WithElements(1, 2),
		WithPushLogic(func(messages ...int) error {
			pushed = append(pushed, append([]int(nil), messages...))
			return nil
		}),
	)

	p.AddMessages(3)
	if err := p.PushAll(); err != nil {
		t.Fatal(err)
	}
	if err := p.PushAll(); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(pushed, [][]int{{1, 2, 3}}) {
		t.Fatalf("pushed %v", pushed)
	}
	if p.Len() != 0 {
		t.Fatalf("expected empty buffer, got %d", p.Len())
	}
}

func TestPushAllKeepsMessagesOnError(t *testing.T) {
	fail := errors.New("sink down")
	attempts := 0
	p := NewPusher(WithPushLogic(func(messages ...string) error {
		attempts++
		if attempts == 1 {
			return fail
		}
		return nil
	}))

	p.AddMessages("a", "b")
	if err := p.PushAll(); !errors.Is(err, fail) {
		t.Fatalf("expected %v, got %v", fail, err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected messages kept after failure, got %d", p.Len())
	}
	if err := p.PushAll(); err != nil {
		t.Fatal(err)
	}
	if p.Len() != 0 {
		t.Fatal("expected buffer drained after retry")
	}
}

func TestStopFlushes(t *testing.T) {
	var mu sync.Mutex
	var got []string
	p := NewPusher(
		WithPushInterval[string](time.Hour),
		WithPushLogic(func(messages ...string) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, messages...)
			return nil
		}),
	)

	p.Start()
	p.AddMessages("x", "y")
	p.Stop()
	p.Stop()

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("expected flush on stop, got %v", got)
	}
}

func TestErrorHandler(t *testing.T) {
	errs := make(chan error, 1)
	fail := errors.New("boom")
	p := NewPusher(
		WithPushInterval[int](time.Millisecond),
		WithPushLogic(func(...int) error { return fail }),
		WithErrorHandler[int](func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)

	p.AddMessages(1)
	p.Start()
	defer p.Stop()

	select {
	case err := <-errs:
		if !errors.Is(err, fail) {
			t.Fatalf("got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("error handler not called")
	}
}
