package target

import (
	"strings"
)

// Address identifies a target instance: a directory path and a target name, for example "src/sh:scripts".
type Address struct {
	path string
	name string
}

func NewAddress(path, name string) Address {
	return Address{path: path, name: name}
}

// ParseAddress parses "path:name" string, the name part is optional.
func ParseAddress(s string) Address {
	if index := strings.LastIndex(s, ":"); index >= 0 {
		return Address{path: s[:index], name: s[index+1:]}
	}
	return Address{path: s}
}

func (a Address) Path() string {
	return a.path
}

func (a Address) Name() string {
	return a.name
}

func (a Address) String() string {
	if a.name == "" {
		return a.path
	}
	return a.path + ":" + a.name
}
