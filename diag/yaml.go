package diag

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a raw bitmask, a comma separated string of flag
// names, or a list of flag names
func (f *Flags) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var mask uint32
		if err := value.Decode(&mask); err == nil {
			*f = Flags(mask)
			return nil
		}
		*f = ParseFlags(strings.Split(value.Value, ","))
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*f = ParseFlags(names)
		return nil
	}
	return fmt.Errorf("line %d: debug flags must be a mask or a list of names", value.Line)
}

// MarshalYAML writes the flags as a list of names
func (f Flags) MarshalYAML() (interface{}, error) {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names, nil
}
