package input

import (
	"slices"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// Handler receives the edge events produced by a Dispatcher.
type Handler interface {
	// ActionPressed is called when an action becomes the active action of its key. Returning false
	// rejects the action: it is dropped and the next held action of the same key is tried.
	ActionPressed(a Action) bool
	// ActionDropped is called when a previously active action stops being active.
	ActionDropped(a Action)
}

type actionEntry struct {
	binding Binding
	bound   bool
	active  bool
}

// Dispatcher maps held keys to a single active action per key. A Dispatcher is owned by exactly one
// character and is not safe for concurrent use.
type Dispatcher struct {
	handler Handler
	clock   game.Clock

	entries [actionCount]actionEntry
	// keys holds the actions bound to each key, sorted by descending priority.
	keys *orderedmap.OrderedMap[Key, []Action]
	// held holds the currently pressed actions of each key, sorted by descending priority.
	held map[Key][]Action

	locks *orderedmap.OrderedMap[string, inputLock]

	move mgl32.Vec3
}

// NewDispatcher creates a dispatcher using the given binding table. A nil table uses
// DefaultBindings.
func NewDispatcher(handler Handler, clock game.Clock, bindings map[Action]Binding) *Dispatcher {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	d := &Dispatcher{
		handler: handler,
		clock:   clock,
		keys:    orderedmap.NewOrderedMap[Key, []Action](),
		held:    make(map[Key][]Action),
		locks:   orderedmap.NewOrderedMap[string, inputLock](),
	}

	for _, a := range Actions() {
		b, ok := bindings[a]
		if !ok {
			continue
		}
		d.entries[a] = actionEntry{binding: b, bound: true}

		list, _ := d.keys.Get(b.Key)
		list = append(list, a)
		d.sortByPriority(list)
		d.keys.Set(b.Key, list)
	}
	return d
}

// SetHandler replaces the handler that receives edge events.
func (d *Dispatcher) SetHandler(h Handler) {
	d.handler = h
}

// Binding returns the binding of an action.
func (d *Dispatcher) Binding(a Action) (Binding, bool) {
	if a >= actionCount || !d.entries[a].bound {
		return Binding{}, false
	}
	return d.entries[a].binding, true
}

// PressKey presses every action bound to the given physical key.
func (d *Dispatcher) PressKey(k Key) {
	list, _ := d.keys.Get(k)
	for _, a := range list {
		d.KeyPressed(a, false)
	}
}

// ReleaseKey releases every action bound to the given physical key. The drops are dispatched on the
// next UpdateInputs.
func (d *Dispatcher) ReleaseKey(k Key) {
	list, _ := d.keys.Get(k)
	for _, a := range list {
		d.KeyReleased(a, false)
	}
}

// KeyPressed adds the action to the held list of its key. If immediate is set the key is resolved
// right away instead of on the next UpdateInputs.
func (d *Dispatcher) KeyPressed(a Action, immediate bool) {
	if d.IsDisabled() || a >= actionCount || !d.entries[a].bound {
		return
	}

	key := d.entries[a].binding.Key
	list := d.held[key]
	if !slices.Contains(list, a) {
		list = append(list, a)
		d.sortByPriority(list)
		d.held[key] = list
	}

	if immediate {
		d.resolve(key)
	}
}

// KeyReleased removes the action from the held list of its key. If immediate is set and the action
// was active, it is dropped right away.
func (d *Dispatcher) KeyReleased(a Action, immediate bool) {
	if a >= actionCount || !d.entries[a].bound {
		return
	}

	key := d.entries[a].binding.Key
	list := d.held[key]
	if i := slices.Index(list, a); i >= 0 {
		d.held[key] = slices.Delete(list, i, i+1)
	}

	if immediate && d.entries[a].active {
		d.entries[a].active = false
		d.dropped(a)
	}
}

// UpdateInputs expires input locks and resolves the active action of every key. It must be called
// once per tick, before the movement step.
func (d *Dispatcher) UpdateInputs() {
	d.expireLocks()

	for el := d.keys.Front(); el != nil; el = el.Next() {
		d.resolve(el.Key)
	}
}

// Active returns true if the action is the active action of its key.
func (d *Dispatcher) Active(a Action) bool {
	return a < actionCount && d.entries[a].active
}

// Held returns true if the action is pressed, whether or not it is the active action of its key.
func (d *Dispatcher) Held(a Action) bool {
	if a >= actionCount || !d.entries[a].bound {
		return false
	}
	return slices.Contains(d.held[d.entries[a].binding.Key], a)
}

// SetMoveVector sets the raw directional input. X is strafe (right positive) and Z is forward.
func (d *Dispatcher) SetMoveVector(x, z float32) {
	d.move = mgl32.Vec3{game.Clamp(x, -1, 1), 0, game.Clamp(z, -1, 1)}
}

// MoveVector returns the normalized local move vector, or zero while input is disabled.
func (d *Dispatcher) MoveVector() mgl32.Vec3 {
	if d.IsDisabled() {
		return mgl32.Vec3{}
	}
	return game.SafeNormalize(d.move)
}

func (d *Dispatcher) resolve(key Key) {
	list, _ := d.keys.Get(key)
	for {
		candidate, ok := d.head(key)
		for _, a := range list {
			if (!ok || a != candidate) && d.entries[a].active {
				d.entries[a].active = false
				d.dropped(a)
			}
		}
		if !ok || d.entries[candidate].active {
			return
		}

		d.entries[candidate].active = true
		if d.pressed(candidate) {
			return
		}
		d.KeyReleased(candidate, true)
	}
}

func (d *Dispatcher) head(key Key) (Action, bool) {
	list := d.held[key]
	if len(list) == 0 {
		return 0, false
	}
	return list[0], true
}

func (d *Dispatcher) pressed(a Action) bool {
	if d.handler == nil {
		return true
	}
	return d.handler.ActionPressed(a)
}

func (d *Dispatcher) dropped(a Action) {
	if d.handler != nil {
		d.handler.ActionDropped(a)
	}
}

func (d *Dispatcher) sortByPriority(list []Action) {
	sort.SliceStable(list, func(i, j int) bool {
		return d.entries[list[i]].binding.Priority > d.entries[list[j]].binding.Priority
	})
}
