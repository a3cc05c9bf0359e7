package reveal

// epsilon absorbs the rounding left when frame deltas are summed.
const epsilon = 1e-9

// Task is a suspendable animation step. A Timeline resumes it once per
// frame with the time elapsed since the previous frame.
//
// Advance moves the task forward by dt seconds. When the task finishes it
// returns done = true together with the unused part of dt, so a following
// task can start within the same frame. A finished task returns (dt, true)
// on every further call.
type Task interface {
	Advance(dt float64) (rest float64, done bool)
}

// TweenFunc receives the progress of a tween in [0, 1].
type TweenFunc func(progress float64)

type tween struct {
	duration float64
	elapsed  float64
	fn       TweenFunc
	started  bool
	done     bool
}

// Tween returns a task that calls fn with the linear progress of its
// duration on every frame, starting with fn(0) and always ending with
// fn(1). A non-positive duration completes on its first frame.
func Tween(duration float64, fn TweenFunc) Task {
	if fn == nil {
		fn = func(float64) {}
	}
	return &tween{duration: duration, fn: fn}
}

// Wait returns a task that does nothing for duration seconds.
func Wait(duration float64) Task {
	return Tween(duration, nil)
}

func (t *tween) Advance(dt float64) (float64, bool) {
	if t.done {
		return dt, true
	}
	if !t.started {
		t.started = true
		t.fn(0)
	}

	t.elapsed += dt
	if t.elapsed >= t.duration-epsilon {
		t.done = true
		t.fn(1)
		rest := t.elapsed - t.duration
		if rest < 0 {
			rest = 0
		}
		return rest, true
	}
	t.fn(t.elapsed / t.duration)
	return 0, false
}

type funcTask struct {
	fn   func()
	done bool
}

// Func returns a task that runs fn once and completes immediately,
// passing the whole frame delta on.
func Func(fn func()) Task {
	return &funcTask{fn: fn}
}

func (f *funcTask) Advance(dt float64) (float64, bool) {
	if !f.done {
		f.done = true
		if f.fn != nil {
			f.fn()
		}
	}
	return dt, true
}

type sequence struct {
	tasks []Task
	i     int
}

// Sequence returns a task that runs tasks one after another. Task k+1 is
// not advanced until task k reports done; leftover frame time flows from
// one task into the next.
func Sequence(tasks ...Task) Task {
	return &sequence{tasks: tasks}
}

func (s *sequence) Advance(dt float64) (float64, bool) {
	for s.i < len(s.tasks) {
		rest, done := s.tasks[s.i].Advance(dt)
		if !done {
			return 0, false
		}
		s.i++
		dt = rest
	}
	return dt, true
}
