// Package manifest owns every read and write of a project's package.json.
// It prunes linter/formatter leftovers, injects the lint script and persists
// the result, keeping every field it does not target byte-for-byte in order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/wexinc/lintkit/internal/jsonfile"
)

// Well-known manifest fields.
const (
	FieldDependencies    = "dependencies"
	FieldDevDependencies = "devDependencies"
	FieldScripts         = "scripts"
)

// DependencySections are the dependency maps scanned by PruneDependencies.
var DependencySections = []string{FieldDependencies, FieldDevDependencies}

// errNotObject is returned by Parse when the document is not a JSON object.
var errNotObject = errors.New("manifest must be a JSON object")

// Document is an in-memory package.json that preserves key order.
type Document struct {
	root *orderedmap.OrderedMap
}

func newObject() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	return m
}

// Parse decodes a manifest. The top-level value must be an object.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}

	root := newObject()
	if err := json.Unmarshal(trimmed, root); err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Bytes serializes the document with two-space indentation.
func (d *Document) Bytes() ([]byte, error) {
	return jsonfile.Marshal(d.root)
}

// Keys returns the top-level field names in document order.
func (d *Document) Keys() []string {
	keys := d.root.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Has reports whether a top-level field is present.
func (d *Document) Has(field string) bool {
	_, ok := d.root.Get(field)
	return ok
}

// Get returns the raw value of a top-level field.
func (d *Document) Get(field string) (any, bool) {
	return d.root.Get(field)
}

// Section returns a copy of an object-valued field as a plain map.
// ok is false when the field is absent or not an object.
func (d *Document) Section(field string) (map[string]any, bool) {
	obj, ok := d.object(field)
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(obj.Keys()))
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		out[k] = v
	}
	return out, true
}

// object returns the object stored under field. Mutations must be written
// back with setObject because nested objects are decoded by value.
func (d *Document) object(field string) (*orderedmap.OrderedMap, bool) {
	v, ok := d.root.Get(field)
	if !ok {
		return nil, false
	}
	switch obj := v.(type) {
	case orderedmap.OrderedMap:
		return &obj, true
	case *orderedmap.OrderedMap:
		return obj, true
	default:
		return nil, false
	}
}

func (d *Document) setObject(field string, obj *orderedmap.OrderedMap) {
	d.root.Set(field, *obj)
}

// PruneDependencies removes every entry of dependencies and devDependencies
// whose package name contains token. Each section is matched independently;
// absent or non-object sections count as empty. The removed entries are
// returned as "section/name".
func (d *Document) PruneDependencies(token string) []string {
	if token == "" {
		return nil
	}

	var removed []string
	for _, section := range DependencySections {
		obj, ok := d.object(section)
		if !ok {
			continue
		}

		var matched []string
		for _, name := range obj.Keys() {
			if strings.Contains(name, token) {
				matched = append(matched, name)
			}
		}
		if len(matched) == 0 {
			continue
		}

		for _, name := range matched {
			obj.Delete(name)
			removed = append(removed, section+"/"+name)
		}
		d.setObject(section, obj)
	}
	return removed
}

// PruneField deletes a top-level field. It reports whether anything was removed.
func (d *Document) PruneField(field string) bool {
	if !d.Has(field) {
		return false
	}
	d.root.Delete(field)
	return true
}

// EnsureScript sets scripts[name] to invocation, creating the scripts object
// when it is missing. Any previous value for name is overwritten.
func (d *Document) EnsureScript(name, invocation string) {
	scripts, ok := d.object(FieldScripts)
	if !ok {
		scripts = newObject()
	}
	scripts.Set(name, invocation)
	d.setObject(FieldScripts, scripts)
}
