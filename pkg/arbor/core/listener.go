package core

// Listener receives the lifecycle events of an execution. Calls are made
// sequentially from the executing goroutine, in traversal order. Every
// executed node gets exactly one Started and one Finished; a skipped node gets
// only Skipped.
type Listener interface {
	Started(node Node)
	Finished(node Node, result Result)
	Skipped(node Node, reason string)
}

// Listeners forwards every event to each listener in order.
type Listeners []Listener

func (ls Listeners) Started(node Node) {
	for _, l := range ls {
		l.Started(node)
	}
}

func (ls Listeners) Finished(node Node, result Result) {
	for _, l := range ls {
		l.Finished(node, result)
	}
}

func (ls Listeners) Skipped(node Node, reason string) {
	for _, l := range ls {
		l.Skipped(node, reason)
	}
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) Started(Node)          {}
func (NopListener) Finished(Node, Result) {}
func (NopListener) Skipped(Node, string)  {}
