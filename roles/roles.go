// Package roles defines the closed role hierarchy of the admin backend and
// the requirement policies routes declare against it.
//
// The hierarchy is a total order of privilege: SuperAdmin > Admin > Worker.
// Unreachable is a sentinel that can never satisfy any requirement; it exists
// so callers can represent "no valid role" without resorting to a zero value
// that accidentally ranks somewhere.
package roles

import (
	"encoding/json"
	"errors"
	"strings"
)

// Role is one of the closed set of user roles. The string values are the
// wire and storage representation.
type Role string

const (
	// SuperAdmin outranks every other role.
	SuperAdmin Role = "Super Admin"
	// Admin outranks Worker.
	Admin Role = "Admin"
	// Worker is the lowest privileged role.
	Worker Role = "Worker"
	// Unreachable never satisfies any requirement, hierarchical or exact.
	Unreachable Role = "Unreachable"
)

// ErrInsufficientRole is returned by Requirement.Check when the caller's
// role does not satisfy the declared requirement. The message is stable;
// clients pattern-match on it.
var ErrInsufficientRole = errors.New("Role does not have sufficient permissions")

// ParseError reports a string that does not name a grantable role.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return "Invalid user role: " + e.Value
}

// Parse converts a string into a Role, case-insensitively. Unreachable is
// deliberately not parseable: it can be constructed in code but never
// arrives over the wire as a legitimate role.
func Parse(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "super admin":
		return SuperAdmin, nil
	case "admin":
		return Admin, nil
	case "worker":
		return Worker, nil
	default:
		return Unreachable, &ParseError{Value: s}
	}
}

// Rank returns the privilege rank used for hierarchical checks:
// SuperAdmin 3, Admin 2, Worker 1, anything else 0.
func (r Role) Rank() int {
	switch r {
	case SuperAdmin:
		return 3
	case Admin:
		return 2
	case Worker:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is a grantable role (Unreachable is not).
func (r Role) Valid() bool {
	return r.Rank() > 0
}

func (r Role) String() string {
	return string(r)
}

// MarshalJSON encodes the role as its wire string.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// UnmarshalJSON decodes and validates a role string. Unknown strings,
// including "Unreachable", are rejected.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type kind int

const (
	kindNone kind = iota
	kindMinimum
	kindExact
)

// Requirement is the policy a route declares for its callers. It is bound
// once at route registration and never changes at runtime.
type Requirement struct {
	kind kind
	role Role
}

// None admits any caller role. Routes that skip token verification
// entirely also use this.
func None() Requirement {
	return Requirement{kind: kindNone}
}

// Minimum admits callers whose role ranks at or above r.
func Minimum(r Role) Requirement {
	return Requirement{kind: kindMinimum, role: r}
}

// Exact admits only callers whose role equals r exactly; higher-ranked
// roles are rejected too.
func Exact(r Role) Requirement {
	return Requirement{kind: kindExact, role: r}
}

// Check decides whether caller satisfies the requirement. The decision is
// pure and deterministic; failure is always ErrInsufficientRole.
func (req Requirement) Check(caller Role) error {
	switch req.kind {
	case kindNone:
		return nil
	case kindMinimum:
		if caller.Rank() > 0 && caller.Rank() >= req.role.Rank() {
			return nil
		}
	case kindExact:
		if caller.Valid() && caller == req.role {
			return nil
		}
	}
	return ErrInsufficientRole
}
