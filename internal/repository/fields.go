package repository

import (
	"sort"
	"strings"
)

// FieldSet names the columns an update is allowed to touch. Columns outside
// the set keep their stored value.
type FieldSet map[string]struct{}

func Fields(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

func (fs FieldSet) Names() []string {
	out := make([]string, 0, len(fs))
	for n := range fs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// pick keeps the columns named by fs. A name missing from columns is
// rejected rather than ignored.
func (fs FieldSet) pick(entity string, columns map[string]any) (map[string]any, error) {
	var unknown []string
	out := make(map[string]any, len(fs))
	for _, n := range fs.Names() {
		v, ok := columns[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		out[n] = v
	}
	if len(unknown) > 0 {
		return nil, invalid("%s has no updatable field %s", entity, strings.Join(unknown, ", "))
	}
	return out, nil
}
