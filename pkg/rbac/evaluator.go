package rbac

import "strings"

const wildcardSuffix = ":*"

// Evaluator answers permission questions against one hierarchy snapshot.
// All methods are pure, never panic, and treat malformed permission strings
// as not granted.
type Evaluator struct {
	hierarchy *RoleHierarchy
}

func NewEvaluator(h *RoleHierarchy) *Evaluator {
	return &Evaluator{hierarchy: h}
}

// HasGlobalPermission reports whether p is granted at global scope, either as
// an exact member of the principal's permissions or via a single-level
// "prefix:*" wildcard grant.
func (e *Evaluator) HasGlobalPermission(p string) bool {
	if e == nil || e.hierarchy == nil {
		return false
	}
	return matchAny(e.hierarchy.AllPermissions, p)
}

// HasDepartmentPermission reports whether p is granted within the given
// department. A principal with no assignment for the department holds no
// permissions there.
func (e *Evaluator) HasDepartmentPermission(p, departmentID string) bool {
	if e == nil || e.hierarchy == nil {
		return false
	}
	assignment, ok := e.hierarchy.Assignment(departmentID)
	if !ok {
		return false
	}
	return matchAny(assignment.Permissions(), p)
}

func matchAny(grants []string, p string) bool {
	if p == "" {
		return false
	}
	for _, grant := range grants {
		if grant == p || wildcardMatch(grant, p) {
			return true
		}
	}
	return false
}

// wildcardMatch supports exactly one form: a grant "prefix:*" matches any
// permission starting with "prefix:". A bare "*" or ":*" grant matches
// nothing.
func wildcardMatch(grant, p string) bool {
	if len(grant) <= len(wildcardSuffix) || !strings.HasSuffix(grant, wildcardSuffix) {
		return false
	}
	prefix := grant[:len(grant)-1]
	return strings.HasPrefix(p, prefix)
}
