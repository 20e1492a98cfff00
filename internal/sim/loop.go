package sim

import "context"

// Loop serialises commands from views and schedulers onto one goroutine.
type Loop struct {
	cmds     chan Command
	onChange func(*Controller)
	onError  func(Command, error)
}

// LoopOption customises a Loop.
type LoopOption func(*Loop)

// OnChange registers a callback run on the loop goroutine after every command.
func OnChange(fn func(*Controller)) LoopOption {
	return func(l *Loop) { l.onChange = fn }
}

// OnError registers a callback for rejected commands.
func OnError(fn func(Command, error)) LoopOption {
	return func(l *Loop) { l.onError = fn }
}

// NewLoop returns a Loop with a queue of the given capacity.
func NewLoop(capacity int, opts ...LoopOption) *Loop {
	if capacity <= 0 {
		capacity = 64
	}
	l := &Loop{cmds: make(chan Command, capacity)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Send enqueues cmd, blocking until there is room or ctx ends.
func (l *Loop) Send(ctx context.Context, cmd Command) error {
	select {
	case l.cmds <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend implements Sink.
func (l *Loop) TrySend(cmd Command) bool {
	select {
	case l.cmds <- cmd:
		return true
	default:
		return false
	}
}

// Run dispatches queued commands to ctrl until ctx ends.
func (l *Loop) Run(ctx context.Context, ctrl *Controller) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.cmds:
			if err := ctrl.Dispatch(cmd); err != nil && l.onError != nil {
				l.onError(cmd, err)
			}
			if l.onChange != nil {
				l.onChange(ctrl)
			}
		}
	}
}
