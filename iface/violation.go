package iface

import "fmt"

// ViolationKind distinguishes absent members from members of the wrong shape.
type ViolationKind int

const (
	// ViolationMissing means the candidate has no member of that name.
	ViolationMissing ViolationKind = iota
	// ViolationMismatch means the member exists with an incompatible shape.
	ViolationMismatch
)

// String returns a string representation of the ViolationKind.
func (k ViolationKind) String() string {
	if k == ViolationMismatch {
		return "mismatch"
	}
	return "missing"
}

// Violation describes one interface member a type fails to satisfy.
type Violation struct {
	// Interface is the name of the interface declaring the member.
	Interface string

	// Member is the member name.
	Member string

	// Kind tells whether the member is absent or mismatched.
	Kind ViolationKind

	// Detail explains a mismatch. Empty for missing members.
	Detail string
}

// String renders the violation as "Interface.Member: kind[: detail]".
func (v Violation) String() string {
	s := fmt.Sprintf("%s.%s: %s", v.Interface, v.Member, v.Kind)
	if v.Detail != "" {
		s += ": " + v.Detail
	}
	return s
}

// MemberNames returns the member names of vs in order.
func MemberNames(vs []Violation) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Member
	}
	return names
}
