// Package uiatest provides a scriptable in-memory accessibility tree that
// stands in for the host application in tests. Keystrokes are recorded rather
// than injected, and an OnKeys hook lets a test mutate the tree in response,
// simulating the host redrawing after input.
package uiatest

import (
	"errors"
	"time"

	"github.com/abctools/abcctl/internal/uia"
)

// ErrStale is returned by every operation on a node that has been detached
// from the tree, mimicking a handle invalidated by a host redraw.
var ErrStale = errors.New("uiatest: stale element handle")

// Keystroke records one injection call made against the sim.
type Keystroke struct {
	Target *Node
	Keys   string
	Hold   string // modifier for HoldSendKeys, "" for SendKeys
}

// Sim is an in-memory uia.Provider over a mutable tree of Nodes.
type Sim struct {
	root *Node

	// Keystrokes is every injection recorded, in order.
	Keystrokes []Keystroke

	// Focused is the node last given focus, nil if none.
	Focused *Node

	// OnKeys, if set, runs after each recorded injection. Tests use it to
	// script the host's reaction (open a screen, advance an invoice, pop a
	// dialog).
	OnKeys func(target *Node, keys string)
}

// New returns a Sim with a bare desktop root.
func New() *Sim {
	s := &Sim{}
	s.root = &Node{name: "Desktop", class: "#32769", sim: s}
	return s
}

// Root implements uia.Provider.
func (s *Sim) Root() (uia.Element, error) { return s.root, nil }

// Walker implements uia.Provider.
func (s *Sim) Walker() uia.TreeWalker { return walker{} }

// RootNode returns the root as a *Node for tree building.
func (s *Sim) RootNode() *Node { return s.root }

// KeysSent returns just the key strings of every recorded injection.
func (s *Sim) KeysSent() []string {
	out := make([]string, len(s.Keystrokes))
	for i, k := range s.Keystrokes {
		if k.Hold != "" {
			out[i] = k.Hold + "+" + k.Keys
		} else {
			out[i] = k.Keys
		}
	}
	return out
}

// Node is one element of the simulated tree. It implements uia.Element.
type Node struct {
	name     string
	class    string
	value    string
	parent   *Node
	children []*Node
	stale    bool
	sim      *Sim
}

// Add creates a child node in sibling order and returns it.
func (n *Node) Add(name, class, value string) *Node {
	child := &Node{name: name, class: class, value: value, parent: n, sim: n.sim}
	n.children = append(n.children, child)
	return child
}

// SetValue changes the node's displayed value.
func (n *Node) SetValue(v string) { n.value = v }

// SetName changes the node's display name.
func (n *Node) SetName(v string) { n.name = v }

// Detach removes the node from its parent and marks the whole subtree stale,
// as the host does when it closes or redraws a screen away.
func (n *Node) Detach() {
	if n.parent != nil {
		siblings := n.parent.children
		for i, c := range siblings {
			if c == n {
				n.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
	n.markStale()
}

func (n *Node) markStale() {
	n.stale = true
	for _, c := range n.children {
		c.markStale()
	}
}

func (n *Node) Name() (string, error) {
	if n.stale {
		return "", ErrStale
	}
	return n.name, nil
}

func (n *Node) ClassName() (string, error) {
	if n.stale {
		return "", ErrStale
	}
	return n.class, nil
}

func (n *Node) Value() (string, error) {
	if n.stale {
		return "", ErrStale
	}
	return n.value, nil
}

func (n *Node) Focus() error {
	if n.stale {
		return ErrStale
	}
	n.sim.Focused = n
	return nil
}

func (n *Node) SendKeys(keys string, _ time.Duration) error {
	if n.stale {
		return ErrStale
	}
	n.sim.Keystrokes = append(n.sim.Keystrokes, Keystroke{Target: n, Keys: keys})
	if n.sim.OnKeys != nil {
		n.sim.OnKeys(n, keys)
	}
	return nil
}

func (n *Node) HoldSendKeys(modifier, key string, _ time.Duration) error {
	if n.stale {
		return ErrStale
	}
	n.sim.Keystrokes = append(n.sim.Keystrokes, Keystroke{Target: n, Keys: key, Hold: modifier})
	if n.sim.OnKeys != nil {
		n.sim.OnKeys(n, modifier+"+"+key)
	}
	return nil
}

type walker struct{}

func (walker) FirstChild(el uia.Element) (uia.Element, error) {
	n, ok := el.(*Node)
	if !ok || n.stale {
		return nil, ErrStale
	}
	if len(n.children) == 0 {
		return nil, uia.ErrNoChild
	}
	return n.children[0], nil
}

func (walker) NextSibling(el uia.Element) (uia.Element, error) {
	n, ok := el.(*Node)
	if !ok || n.stale {
		return nil, ErrStale
	}
	if n.parent == nil {
		return nil, uia.ErrNoSibling
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n && i+1 < len(siblings) {
			return siblings[i+1], nil
		}
	}
	return nil, uia.ErrNoSibling
}
