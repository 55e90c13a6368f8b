package param

import (
	"fmt"
	"strconv"
)

// LinkKind distinguishes owned values from references.
type LinkKind int

const (
	// KindValue means the parameter owns a slot initialised to a default.
	KindValue LinkKind = iota
	// KindReference means the parameter aliases another parameter's slot.
	KindReference
)

// Link is the declared binding intent of a parameter.
type Link struct {
	kind   LinkKind
	value  float32
	target string
}

// Value returns a link that owns a slot starting at v.
func Value(v float32) Link {
	return Link{kind: KindValue, value: v}
}

// Reference returns a link aliasing the parameter with the given qualified name.
func Reference(target string) Link {
	return Link{kind: KindReference, target: target}
}

// Kind reports whether the link is a value or a reference.
func (l Link) Kind() LinkKind { return l.kind }

// IsValue reports whether the link owns a slot.
func (l Link) IsValue() bool { return l.kind == KindValue }

// Default is the initial slot value of a value link, zero for references.
func (l Link) Default() float32 {
	if l.kind != KindValue {
		return 0
	}
	return l.value
}

// Target is the qualified name a reference points at, empty for values.
func (l Link) Target() string {
	if l.kind != KindReference {
		return ""
	}
	return l.target
}

func (l Link) String() string {
	if l.kind == KindReference {
		return fmt.Sprintf("-> %q", l.target)
	}
	return strconv.FormatFloat(float64(l.value), 'g', -1, 32)
}
