package ics

import "strings"

// Property is one logical content line split into its parts. Name and
// parameter keys are normalized to upper case.
type Property struct {
	Name   string
	Params map[string]string
	Value  string
}

// ParseProperty splits a logical line into name, parameters, and value.
// A line without a colon is treated as a bare property name with no value
// rather than rejected; feeds in the wild contain such lines. Parameter
// segments without an equals sign are skipped.
func ParseProperty(line string) Property {
	left, value, found := strings.Cut(line, ":")
	if !found {
		return Property{
			Name:   strings.ToUpper(strings.TrimSpace(line)),
			Params: map[string]string{},
		}
	}

	segments := strings.Split(left, ";")
	prop := Property{
		Name:   strings.ToUpper(strings.TrimSpace(segments[0])),
		Params: make(map[string]string, len(segments)-1),
		Value:  strings.TrimSpace(value),
	}
	for _, segment := range segments[1:] {
		key, val, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		prop.Params[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(val)
	}
	return prop
}
