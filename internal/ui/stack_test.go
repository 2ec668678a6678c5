package ui

import "testing"

func TestPushDeferredUntilCommit(t *testing.T) {
	u := newTestUI()
	p := newStub("p")

	u.Push(p)

	if u.IsEmpty() {
		t.Error("IsEmpty() = true after Push, want false")
	}
	if got := u.Top(); got != Panel(p) {
		t.Errorf("Top() = %v, want the pushed panel", got)
	}
	if u.IsTop(p) {
		t.Error("IsTop() = true before commit, want false")
	}

	u.StepAll()

	if !u.IsTop(p) {
		t.Error("IsTop() = false after commit, want true")
	}
}

func TestPushOrderPreserved(t *testing.T) {
	u := newTestUI()
	a, b, c := newStub("a"), newStub("b"), newStub("c")

	u.Push(a)
	u.Push(b)
	u.StepAll()
	u.Push(c)
	u.StepAll()

	if got := u.Root(); got != Panel(a) {
		t.Errorf("Root() = %v, want first pushed panel", got)
	}
	if got := u.Top(); got != Panel(c) {
		t.Errorf("Top() = %v, want last pushed panel", got)
	}
	if !u.IsTop(c) {
		t.Error("IsTop(c) = false, want true")
	}
	if u.IsTop(b) {
		t.Error("IsTop(b) = true, want false")
	}
}

func TestPushThenPopSameBatch(t *testing.T) {
	u := newTestUI()
	p := newStub("p")

	u.Push(p)
	u.Pop(p)
	u.StepAll()

	if !u.IsEmpty() {
		t.Error("panel pushed and popped in the same batch survived the commit")
	}
}

func TestPopUnknownPanelIsNoop(t *testing.T) {
	u := newTestUI()
	a, ghost := newStub("a"), newStub("ghost")
	pushCommitted(u, a)

	u.Pop(ghost)
	u.StepAll()

	if u.IsEmpty() {
		t.Error("popping an unstacked panel removed something")
	}
	if !u.IsTop(a) {
		t.Error("IsTop(a) = false after no-op pop")
	}
}

func TestPopFirstMatchOnly(t *testing.T) {
	u := newTestUI()
	a, b := newStub("a"), newStub("b")
	pushCommitted(u, a, b)

	u.Pop(a)
	u.StepAll()

	if got := u.Root(); got != Panel(b) {
		t.Errorf("Root() = %v after popping a, want b", got)
	}
	if got := u.Top(); got != Panel(b) {
		t.Errorf("Top() = %v after popping a, want b", got)
	}
}

func TestPopThrough(t *testing.T) {
	u := newTestUI()
	a, b, c := newStub("a"), newStub("b"), newStub("c")
	pushCommitted(u, a, b, c)

	u.PopThrough(b)
	u.StepAll()

	if got := u.Top(); got != Panel(a) {
		t.Errorf("Top() = %v after PopThrough(b), want a", got)
	}
	if u.IsTop(b) || u.IsTop(c) {
		t.Error("PopThrough(b) left b or c stacked")
	}
}

func TestPopThroughUnmatchedPopsEverything(t *testing.T) {
	u := newTestUI()
	a, b := newStub("a"), newStub("b")
	ghost := newStub("ghost")
	pushCommitted(u, a, b)

	u.PopThrough(ghost)
	u.StepAll()

	if !u.IsEmpty() {
		t.Error("PopThrough of an unstacked panel should queue the whole stack")
	}
}

func TestTopRootEmptySentinels(t *testing.T) {
	u := newTestUI()

	if got := u.Top(); got != nil {
		t.Errorf("Top() on empty stack = %v, want nil", got)
	}
	if got := u.Root(); got != nil {
		t.Errorf("Root() on empty stack = %v, want nil", got)
	}
	if !u.IsEmpty() {
		t.Error("IsEmpty() = false on a fresh stack")
	}
}

func TestRootPrefersCommittedStack(t *testing.T) {
	u := newTestUI()
	a, b := newStub("a"), newStub("b")
	pushCommitted(u, a)
	u.Push(b)

	if got := u.Root(); got != Panel(a) {
		t.Errorf("Root() = %v, want the committed bottom panel", got)
	}
	if got := u.Top(); got != Panel(b) {
		t.Errorf("Top() = %v, want the pending pushed panel", got)
	}
}

func TestReset(t *testing.T) {
	u := newTestUI()
	pushCommitted(u, newStub("a"), newStub("b"))
	u.Push(newStub("pending"))
	u.Quit()

	u.Reset()

	if !u.IsEmpty() {
		t.Error("IsEmpty() = false after Reset")
	}
	if u.IsDone() {
		t.Error("IsDone() = true after Reset, want cleared")
	}
	if got := u.Top(); got != nil {
		t.Errorf("Top() = %v after Reset, want nil", got)
	}
}

func TestQuitSticksUntilReset(t *testing.T) {
	u := newTestUI()
	u.Quit()
	u.StepAll()

	if !u.IsDone() {
		t.Error("IsDone() = false after Quit, want true across frames")
	}
}

func TestCanSave(t *testing.T) {
	u := newTestUI()

	if u.CanSave() {
		t.Error("CanSave() = true on a fresh stack")
	}
	u.SetCanSave(true)
	if !u.CanSave() {
		t.Error("CanSave() = false after SetCanSave(true)")
	}
}

func TestMouseUsesMapperCursor(t *testing.T) {
	u := newTestUI()

	x, y := u.Mouse()
	if x != 42 || y != 24 {
		t.Errorf("Mouse() = (%g,%g), want the mapper cursor (42,24)", x, y)
	}
}

func TestPushNilIgnored(t *testing.T) {
	u := newTestUI()
	u.Push(nil)
	u.StepAll()

	if !u.IsEmpty() {
		t.Error("pushing nil produced a stacked panel")
	}
}
