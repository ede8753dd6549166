package keymap

import "slices"

// Resolver maps key strings to actions.
type Resolver struct {
	actions map[string]Action   // key -> action
	keys    map[Action][]string // action -> keys, for help
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key the later one wins; the earlier action still lists the key in KeysFor.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
