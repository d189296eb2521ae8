package uievents

import "fmt"

// HandlerPanicError reports a handler that panicked during dispatch.
type HandlerPanicError struct {
	Node       NodeID
	Capability Capability
	Value      any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("uievents: %s handler on node %d panicked: %v", e.Capability, e.Node, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *HandlerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Dispatcher delivers events to the handlers attached to tree nodes.
// A failing handler is logged and skipped; errors never reach the caller.
type Dispatcher struct {
	tree     *Tree
	handlers listPool[any]

	// delivered is called after every successful handler invocation.
	delivered func(node NodeID, c Capability, ev Event)
	// failed is called for every handler that panicked or mismatched.
	failed func(node NodeID, c Capability, err error)
}

// NewDispatcher creates a dispatcher over tree.
func NewDispatcher(tree *Tree) *Dispatcher {
	return &Dispatcher{tree: tree}
}

// Tree returns the tree the dispatcher routes through.
func (d *Dispatcher) Tree() *Tree { return d.tree }

// Execute invokes every enabled handler on node that implements c, in
// attach order, and reports whether there was at least one. Nodes that are
// not active and enabled have no handlers.
func (d *Dispatcher) Execute(node NodeID, ev Event, c Capability) bool {
	handlers := d.handlers.Acquire()
	defer func() { d.handlers.Release(handlers) }()

	handlers = d.collect(node, c, handlers)
	for _, h := range handlers {
		if err := d.invoke(node, h, ev, c); err != nil {
			Logger().Error("dispatch failed", "node", d.tree.Path(node), "capability", c, "err", err)
			if d.failed != nil {
				d.failed(node, c, err)
			}
			continue
		}
		if d.delivered != nil {
			d.delivered(node, c, ev)
		}
	}
	return len(handlers) > 0
}

func (d *Dispatcher) invoke(node NodeID, h any, ev Event, c Capability) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerPanicError{Node: node, Capability: c, Value: r}
		}
	}()
	return c.invoke(h, ev)
}

func (d *Dispatcher) collect(node NodeID, c Capability, buf []any) []any {
	if !d.tree.ActiveAndEnabled(node) {
		return buf
	}
	return d.tree.appendHandlers(node, c, buf)
}

// ExecuteHierarchy walks from node toward the root and executes c on the
// first node that handles it. It returns that node, or NoNode.
func (d *Dispatcher) ExecuteHierarchy(node NodeID, ev Event, c Capability) NodeID {
	for n := node; n != NoNode; n = d.tree.Parent(n) {
		if d.Execute(n, ev, c) {
			return n
		}
	}
	return NoNode
}

// CanHandleEvent reports whether node has an enabled handler for c.
func (d *Dispatcher) CanHandleEvent(node NodeID, c Capability) bool {
	handlers := d.handlers.Acquire()
	defer func() { d.handlers.Release(handlers) }()

	handlers = d.collect(node, c, handlers)
	return len(handlers) > 0
}

// GetEventHandler returns the nearest node, starting at node itself, that
// can handle c, or NoNode.
func (d *Dispatcher) GetEventHandler(node NodeID, c Capability) NodeID {
	for n := node; n != NoNode; n = d.tree.Parent(n) {
		if d.CanHandleEvent(n, c) {
			return n
		}
	}
	return NoNode
}
