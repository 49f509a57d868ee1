package category

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Info is one category master entry.
type Info struct {
	Name string `json:"name" yaml:"name"`
}

// The built-in master. Categories are fixed reference data, not tenant
// state; deployments that need different wording ship a YAML override.
var defaultNames = []string{
	"Urgent response required",
	"Breakdown / defect (large equipment)",
	"Breakdown / defect (medium or small equipment)",
	"Suspected fault (large equipment)",
	"Suspected fault (medium or small equipment)",
	"Customer inquiry",
	"Office exterior / infrastructure",
	"Loaned equipment",
	"Office supplies",
	"Other",
}

var master map[int]Info

// Init builds the immutable lookup table once at startup. When path is
// non-empty the YAML file replaces the built-in list; entries are keyed by
// category id.
func Init(path string) error {
	m := make(map[int]Info, len(defaultNames))
	for i, name := range defaultNames {
		m[i+1] = Info{Name: name}
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read category file: %w", err)
		}
		override := map[int]Info{}
		if err := yaml.Unmarshal(raw, &override); err != nil {
			return fmt.Errorf("parse category file: %w", err)
		}
		if len(override) > 0 {
			m = override
		}
	}

	master = m
	return nil
}

// Master returns the id-keyed lookup table.
func Master() map[int]Info {
	return master
}

// Name resolves a category id; ok is false for unknown ids.
func Name(id int) (string, bool) {
	info, ok := master[id]
	return info.Name, ok
}

// IDs returns the known category ids in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(master))
	for id := range master {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
