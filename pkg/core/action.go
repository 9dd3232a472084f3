package core

import "context"

// Action collects the requests produced while handling a message. The zero
// value requests nothing.
type Action struct {
	rebuild  bool
	quit     bool
	messages []*Message
	tasks    []func(ctx context.Context)
}

// Rebuild requests a render pass.
func Rebuild() Action {
	return Action{rebuild: true}
}

// Quit requests the application to stop.
func Quit() Action {
	return Action{quit: true}
}

// Send queues msg after the current batch.
func Send(msg *Message) Action {
	return Action{messages: []*Message{msg}}
}

// Spawn runs task in the background.
func Spawn(task func(ctx context.Context)) Action {
	return Action{tasks: []func(ctx context.Context){task}}
}

// Merge combines two actions. Boolean requests are or-ed, messages and
// tasks are concatenated in order.
func (a Action) Merge(b Action) Action {
	a.rebuild = a.rebuild || b.rebuild
	a.quit = a.quit || b.quit
	if len(b.messages) > 0 {
		a.messages = append(a.messages[:len(a.messages):len(a.messages)], b.messages...)
	}
	if len(b.tasks) > 0 {
		a.tasks = append(a.tasks[:len(a.tasks):len(a.tasks)], b.tasks...)
	}
	return a
}

// WantsRebuild reports whether a render pass was requested.
func (a Action) WantsRebuild() bool { return a.rebuild }

// WantsQuit reports whether the application should stop.
func (a Action) WantsQuit() bool { return a.quit }

// Messages returns the follow-up messages.
func (a Action) Messages() []*Message { return a.messages }

// Tasks returns the background tasks.
func (a Action) Tasks() []func(ctx context.Context) { return a.tasks }

// IsZero reports whether the action requests nothing.
func (a Action) IsZero() bool {
	return !a.rebuild && !a.quit && len(a.messages) == 0 && len(a.tasks) == 0
}
