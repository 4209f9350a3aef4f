package manifest

import "strings"

// SplitPath splits a dot-separated key chain such as "scripts.post-install-cmd".
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Lookup follows keys through nested objects.
func (o *Object) Lookup(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	cur := o
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur.Object(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur.Get(keys[len(keys)-1])
}

// Ensure returns the object at keys, creating empty objects along the way.
// A non-object value in the way is replaced.
func (o *Object) Ensure(keys ...string) *Object {
	cur := o
	for _, k := range keys {
		next, ok := cur.Object(k)
		if !ok {
			next = NewObject()
			cur.Set(k, next)
		}
		cur = next
	}
	return cur
}

// DeletePath removes the value at the end of keys. It does nothing when an
// intermediate key is missing or is not an object.
func (o *Object) DeletePath(keys ...string) bool {
	if len(keys) == 0 {
		return false
	}
	cur := o
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur.Object(k)
		if !ok {
			return false
		}
		cur = next
	}
	return cur.Delete(keys[len(keys)-1])
}
