package paramid

import (
	"fmt"
	"strings"
)

// Separator joins the instance and local parts of a qualified name.
const Separator = ": "

// Name is a parsed qualified parameter name.
type Name struct {
	Instance string
	Local    string
}

// Qualify formats the qualified name of a local parameter on an instance.
func Qualify(instance, local string) string {
	if instance == "" {
		return local
	}
	return instance + Separator + local
}

// Bare reports whether the name has no instance part.
func (n Name) Bare() bool {
	return n.Instance == ""
}

// String serialises the Name into its canonical form.
func (n Name) String() string {
	return Qualify(n.Instance, n.Local)
}

// Parse splits a qualified name at the first separator.
func Parse(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, fmt.Errorf("parameter name cannot be empty")
	}
	instance, local, found := strings.Cut(raw, Separator)
	if !found {
		if err := ValidateLocal(raw); err != nil {
			return Name{}, err
		}
		return Name{Local: raw}, nil
	}
	if err := ValidateInstance(instance); err != nil {
		return Name{}, err
	}
	if err := ValidateLocal(local); err != nil {
		return Name{}, err
	}
	return Name{Instance: instance, Local: local}, nil
}

// ValidateInstance checks an instance name can round-trip through Parse.
func ValidateInstance(instance string) error {
	switch {
	case instance == "":
		return fmt.Errorf("instance name cannot be empty")
	case strings.TrimSpace(instance) != instance:
		return fmt.Errorf("instance name %q has surrounding whitespace", instance)
	case strings.Contains(instance, ":"):
		return fmt.Errorf("instance name %q must not contain ':'", instance)
	}
	return nil
}

// ValidateLocal checks a local parameter name.
func ValidateLocal(local string) error {
	switch {
	case local == "":
		return fmt.Errorf("local parameter name cannot be empty")
	case strings.TrimSpace(local) != local:
		return fmt.Errorf("local parameter name %q has surrounding whitespace", local)
	case strings.Contains(local, ":"):
		return fmt.Errorf("local parameter name %q must not contain ':'", local)
	}
	return nil
}
