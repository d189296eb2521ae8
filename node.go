package uievents

import (
	"fmt"
	"strings"
)

// NodeID identifies a node in a Tree. IDs are stable for the lifetime of the
// tree and are never reused after Destroy.
type NodeID int32

// NoNode is the zero NodeID and means "no node".
const NoNode NodeID = 0

// node is one arena slot. Sibling links form a doubly linked child list so
// that detaching is O(1) and child order is insertion order.
type node struct {
	name string

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	nextSibling NodeID
	prevSibling NodeID

	active  bool
	enabled bool
	alive   bool

	handlers []handlerEntry

	entityID uint32
	userData any
}

type handlerEntry struct {
	id uint32
	h  any
}

// Tree is the scene hierarchy the event pipeline routes through. Nodes live
// in a flat arena and refer to each other by index, so ancestor walks never
// allocate. The pipeline never owns nodes; it only stores NodeIDs.
type Tree struct {
	nodes         []node
	nextHandlerID uint32
}

// NewTree creates an empty tree. Slot 0 is reserved for NoNode.
func NewTree() *Tree {
	return &Tree{nodes: make([]node, 1, 64)}
}

// NewNode creates a detached, active and enabled node.
func (t *Tree) NewNode(name string) NodeID {
	t.nodes = append(t.nodes, node{
		name:    name,
		active:  true,
		enabled: true,
		alive:   true,
	})
	return NodeID(len(t.nodes) - 1)
}

// NewChild creates a node and appends it to parent.
func (t *Tree) NewChild(parent NodeID, name string) NodeID {
	id := t.NewNode(name)
	t.AddChild(parent, id)
	return id
}

// Valid reports whether id refers to a live node.
func (t *Tree) Valid(id NodeID) bool {
	return id > 0 && int(id) < len(t.nodes) && t.nodes[id].alive
}

func (t *Tree) mustNode(id NodeID, op string) *node {
	if !t.Valid(id) {
		panic(fmt.Sprintf("uievents: %s on invalid node %d", op, id))
	}
	return &t.nodes[id]
}

// --- Tree manipulation ---

// AddChild appends child to parent's children.
// If child already has a parent, it is removed from that parent first.
// Panics if either node is invalid or child is an ancestor of parent (cycle).
func (t *Tree) AddChild(parent, child NodeID) {
	t.mustNode(parent, "AddChild (parent)")
	c := t.mustNode(child, "AddChild (child)")
	if t.IsAncestor(child, parent) {
		panic("uievents: adding child would create a cycle")
	}
	if c.parent != NoNode {
		t.detach(child)
	}
	p := &t.nodes[parent]
	c.parent = parent
	c.prevSibling = p.lastChild
	c.nextSibling = NoNode
	if p.lastChild != NoNode {
		t.nodes[p.lastChild].nextSibling = child
	} else {
		p.firstChild = child
	}
	p.lastChild = child
	if globalDebug {
		debugCheckTreeDepth(t, child)
		debugCheckChildCount(t, parent)
	}
}

// RemoveFromParent detaches id from its parent.
// No-op if the node has no parent.
func (t *Tree) RemoveFromParent(id NodeID) {
	if !t.Valid(id) || t.nodes[id].parent == NoNode {
		return
	}
	t.detach(id)
}

func (t *Tree) detach(id NodeID) {
	n := &t.nodes[id]
	p := &t.nodes[n.parent]
	if n.prevSibling != NoNode {
		t.nodes[n.prevSibling].nextSibling = n.nextSibling
	} else {
		p.firstChild = n.nextSibling
	}
	if n.nextSibling != NoNode {
		t.nodes[n.nextSibling].prevSibling = n.prevSibling
	} else {
		p.lastChild = n.prevSibling
	}
	n.parent = NoNode
	n.prevSibling = NoNode
	n.nextSibling = NoNode
}

// Destroy detaches id and marks it and all its descendants dead.
// Handlers and user data are released.
func (t *Tree) Destroy(id NodeID) {
	if !t.Valid(id) {
		return
	}
	t.RemoveFromParent(id)
	t.destroy(id)
}

func (t *Tree) destroy(id NodeID) {
	n := &t.nodes[id]
	for c := n.firstChild; c != NoNode; {
		next := t.nodes[c].nextSibling
		t.nodes[c].parent = NoNode
		t.destroy(c)
		c = next
	}
	n = &t.nodes[id]
	n.alive = false
	n.firstChild = NoNode
	n.lastChild = NoNode
	n.nextSibling = NoNode
	n.prevSibling = NoNode
	n.handlers = nil
	n.userData = nil
}

// --- Queries ---

// Name returns the node's name, or "" for invalid ids.
func (t *Tree) Name(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	return t.nodes[id].name
}

// Parent returns the parent of id, or NoNode for roots and invalid ids.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children appends the children of id to buf in order and returns it.
func (t *Tree) Children(id NodeID, buf []NodeID) []NodeID {
	if !t.Valid(id) {
		return buf
	}
	for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSibling {
		buf = append(buf, c)
	}
	return buf
}

// NumChildren returns the number of direct children of id.
func (t *Tree) NumChildren(id NodeID) int {
	n := 0
	if !t.Valid(id) {
		return 0
	}
	for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSibling {
		n++
	}
	return n
}

// IsAncestor reports whether candidate is id or one of its ancestors.
func (t *Tree) IsAncestor(candidate, id NodeID) bool {
	for p := id; p != NoNode; p = t.Parent(p) {
		if p == candidate {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors of id.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		d++
	}
	return d
}

// Path returns a slash-separated name path from the root to id, used in
// log output.
func (t *Tree) Path(id NodeID) string {
	if !t.Valid(id) {
		return "<none>"
	}
	var parts []string
	for p := id; p != NoNode; p = t.Parent(p) {
		parts = append(parts, t.nodes[p].name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// --- Activity ---

// SetActive sets the node's own active flag. An inactive node deactivates
// its whole subtree.
func (t *Tree) SetActive(id NodeID, active bool) {
	t.mustNode(id, "SetActive").active = active
}

// ActiveSelf returns the node's own active flag.
func (t *Tree) ActiveSelf(id NodeID) bool {
	return t.Valid(id) && t.nodes[id].active
}

// ActiveInHierarchy reports whether id and all of its ancestors are active.
func (t *Tree) ActiveInHierarchy(id NodeID) bool {
	if !t.Valid(id) {
		return false
	}
	for p := id; p != NoNode; p = t.nodes[p].parent {
		if !t.nodes[p].active {
			return false
		}
	}
	return true
}

// SetEnabled enables or disables event delivery to the node itself without
// affecting its descendants.
func (t *Tree) SetEnabled(id NodeID, enabled bool) {
	t.mustNode(id, "SetEnabled").enabled = enabled
}

// ActiveAndEnabled reports whether the node is active in the hierarchy and
// enabled.
func (t *Tree) ActiveAndEnabled(id NodeID) bool {
	return t.ActiveInHierarchy(id) && t.nodes[id].enabled
}

// --- Metadata ---

// SetEntityID associates an ECS entity with the node. Events delivered to
// nodes with a non-zero EntityID are forwarded to the EntityStore.
func (t *Tree) SetEntityID(id NodeID, entity uint32) {
	t.mustNode(id, "SetEntityID").entityID = entity
}

// EntityID returns the ECS entity associated with the node.
func (t *Tree) EntityID(id NodeID) uint32 {
	if !t.Valid(id) {
		return 0
	}
	return t.nodes[id].entityID
}

// SetUserData attaches arbitrary data to the node.
func (t *Tree) SetUserData(id NodeID, data any) {
	t.mustNode(id, "SetUserData").userData = data
}

// UserData returns the data attached with SetUserData.
func (t *Tree) UserData(id NodeID) any {
	if !t.Valid(id) {
		return nil
	}
	return t.nodes[id].userData
}

// --- Handlers ---

// HandlerHandle allows detaching a handler added with AddHandler.
type HandlerHandle struct {
	tree *Tree
	node NodeID
	id   uint32
}

// Remove detaches the handler. Safe to call more than once.
func (h HandlerHandle) Remove() {
	if h.tree == nil || !h.tree.Valid(h.node) {
		return
	}
	n := &h.tree.nodes[h.node]
	for i := range n.handlers {
		if n.handlers[i].id == h.id {
			copy(n.handlers[i:], n.handlers[i+1:])
			n.handlers[len(n.handlers)-1] = handlerEntry{}
			n.handlers = n.handlers[:len(n.handlers)-1]
			return
		}
	}
}

// AddHandler attaches h to the node. h may implement any number of the
// capability interfaces (PointerClickHandler, DragHandler, ...); handlers
// are invoked in attach order.
func (t *Tree) AddHandler(id NodeID, h any) HandlerHandle {
	if h == nil {
		panic("uievents: cannot add nil handler")
	}
	n := t.mustNode(id, "AddHandler")
	t.nextHandlerID++
	n.handlers = append(n.handlers, handlerEntry{id: t.nextHandlerID, h: h})
	return HandlerHandle{tree: t, node: id, id: t.nextHandlerID}
}

// NumHandlers returns how many handlers are attached to the node.
func (t *Tree) NumHandlers(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}
	return len(t.nodes[id].handlers)
}

// Capabilities returns the union of capabilities implemented by the node's
// enabled handlers.
func (t *Tree) Capabilities(id NodeID) CapabilitySet {
	var set CapabilitySet
	if !t.Valid(id) {
		return set
	}
	for _, e := range t.nodes[id].handlers {
		if !handlerEnabled(e.h) {
			continue
		}
		for c := Capability(0); c < numCapabilities; c++ {
			if c.Supports(e.h) {
				set = set.With(c)
			}
		}
	}
	return set
}

// appendHandlers appends the node's enabled handlers supporting c to buf.
func (t *Tree) appendHandlers(id NodeID, c Capability, buf []any) []any {
	for _, e := range t.nodes[id].handlers {
		if handlerEnabled(e.h) && c.Supports(e.h) {
			buf = append(buf, e.h)
		}
	}
	return buf
}
