package input

import "testing"

func TestSource_CloseReleasesHandler(t *testing.T) {
	src := NewSource()
	rec := &recorder{}
	sub := Listen(src, NewMapper(), rec, nil)

	src.Dispatch(KeyArrowRight)
	sub.Close()
	src.Dispatch(KeyArrowRight)

	if len(rec.calls) != 1 {
		t.Errorf("expected 1 call before close, got %v", rec.calls)
	}
	if src.Len() != 0 {
		t.Errorf("expected no subscribers, got %d", src.Len())
	}
}

func TestSource_CloseIdempotent(t *testing.T) {
	src := NewSource()
	a := src.Subscribe(func(*KeyEvent) {})
	b := src.Subscribe(func(*KeyEvent) {})
	a.Close()
	a.Close()
	if src.Len() != 1 {
		t.Errorf("second Close must not remove other handlers, len=%d", src.Len())
	}
	b.Close()
	var nilSub *Subscription
	nilSub.Close()
}

func TestSource_RemountDoesNotDuplicate(t *testing.T) {
	src := NewSource()
	rec := &recorder{}
	m := NewMapper()

	for mount := 0; mount < 3; mount++ {
		sub := Listen(src, m, rec, nil)
		rec.calls = nil
		src.Dispatch(KeyEnd)
		if len(rec.calls) != 1 {
			t.Fatalf("mount %d: expected 1 call, got %v", mount, rec.calls)
		}
		sub.Close()
	}
}

func TestSource_DispatchOrder(t *testing.T) {
	src := NewSource()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		src.Subscribe(func(*KeyEvent) { order = append(order, i) })
	}
	src.Dispatch("x")
	for i, v := range order {
		if v != i {
			t.Fatalf("handlers ran out of order: %v", order)
		}
	}
}

func TestListen_ReportsActions(t *testing.T) {
	src := NewSource()
	var got []Action
	sub := Listen(src, NewMapper(), &recorder{}, func(a Action) { got = append(got, a) })
	defer sub.Close()

	src.Dispatch(KeyPageUp)
	src.Dispatch("z")
	src.Dispatch(KeyHome)

	if len(got) != 2 || got[0] != ActionPrev || got[1] != ActionFirst {
		t.Errorf("unexpected actions: %v", got)
	}
}
