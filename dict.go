package morph

import (
	"fmt"
	"slices"
)

// A Dict is a group whose members are addressed by string keys. Keys keep
// their insertion order. The zero value is an empty dict ready for use.
type Dict struct {
	Group
	byKey map[string]PathNode
	keys  []string
}

// NewDict returns an empty keyed group.
func NewDict() *Dict {
	return &Dict{byKey: map[string]PathNode{}}
}

// Set adds value under key, replacing any previous member stored there. A
// replaced key moves to the end of the key order.
func (d *Dict) Set(key string, value PathNode) error {
	if d.byKey == nil {
		d.byKey = map[string]PathNode{}
	}
	if _, ok := d.byKey[key]; ok {
		if err := d.Remove(key); err != nil {
			return err
		}
	}
	if err := d.Add(value); err != nil {
		return err
	}
	d.byKey[key] = value
	d.keys = append(d.keys, key)
	return nil
}

// Get returns the member stored under key.
func (d *Dict) Get(key string) (PathNode, error) {
	v, ok := d.byKey[key]
	if !ok {
		return nil, fmt.Errorf("key %q is not present in the dict", key)
	}
	return v, nil
}

// Remove removes the member stored under key.
func (d *Dict) Remove(key string) error {
	v, ok := d.byKey[key]
	if !ok {
		return fmt.Errorf("key %q is not present in the dict", key)
	}
	d.Group.Remove(v)
	delete(d.byKey, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
	return nil
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	return slices.Clone(d.keys)
}
