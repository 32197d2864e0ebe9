package rbac

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/classhub/classhub/pkg/serrors"
)

// UserType is a top-level persona axis, independent of department membership.
type UserType string

const (
	UserTypeLearner     UserType = "learner"
	UserTypeStaff       UserType = "staff"
	UserTypeGlobalAdmin UserType = "global-admin"
)

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeLearner, UserTypeStaff, UserTypeGlobalAdmin:
		return true
	}
	return false
}

// Role is a named bundle of permission strings within a department.
type Role struct {
	ID          string
	Name        string
	Permissions []string
}

// DepartmentRoleAssignment holds the roles a principal has within one
// department on one user-type axis.
type DepartmentRoleAssignment struct {
	DepartmentID   string
	DepartmentName string
	IsPrimary      bool
	Roles          []Role
}

// Permissions returns the union of the assignment's role permissions,
// preserving first-seen order.
func (a DepartmentRoleAssignment) Permissions() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, role := range a.Roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// RoleGroup collects the department assignments of one user-type axis.
// At most one assignment per group may be flagged primary.
type RoleGroup struct {
	Assignments []DepartmentRoleAssignment
}

// RoleHierarchy is an immutable snapshot of a principal's roles and
// permissions across the user-type and department axes. It is produced by the
// auth/session layer and must be treated as read-only for the duration of any
// resolution pass.
type RoleHierarchy struct {
	UserID          uuid.UUID
	PrimaryUserType UserType
	AllUserTypes    []UserType
	// AllPermissions holds global-scope grants only.
	AllPermissions []string
	// DepartmentRoles maps a user-type axis to its department-scoped roles.
	DepartmentRoles map[UserType]RoleGroup
}

var (
	ErrNoUserTypes        = serrors.NewError("HIERARCHY_NO_USER_TYPES", "role hierarchy has no user types", "")
	ErrPrimaryTypeMissing = serrors.NewError("HIERARCHY_PRIMARY_TYPE_MISSING", "primary user type is not among all user types", "")
	ErrInvalidUserType    = serrors.NewError("HIERARCHY_INVALID_USER_TYPE", "unknown user type", "")
	ErrDuplicateDept      = serrors.NewError("HIERARCHY_DUPLICATE_DEPARTMENT", "more than one assignment for the same department", "")
	ErrMultiplePrimaries  = serrors.NewError("HIERARCHY_MULTIPLE_PRIMARIES", "more than one primary assignment in a role group", "")
)

// Validate checks the structural invariants of the snapshot. A hierarchy that
// fails validation must not be used to derive a navigation tree.
func (h *RoleHierarchy) Validate() error {
	if len(h.AllUserTypes) == 0 {
		return ErrNoUserTypes
	}
	for _, t := range h.AllUserTypes {
		if !t.IsValid() {
			return ErrInvalidUserType.WithDetails(string(t))
		}
	}
	if !h.HasUserType(h.PrimaryUserType) {
		return ErrPrimaryTypeMissing.WithDetails(string(h.PrimaryUserType))
	}
	seenDepts := make(map[string]struct{})
	for axis, group := range h.DepartmentRoles {
		if !axis.IsValid() {
			return ErrInvalidUserType.WithDetails(string(axis))
		}
		primaries := 0
		for _, a := range group.Assignments {
			if _, ok := seenDepts[a.DepartmentID]; ok {
				return ErrDuplicateDept.WithDetails(a.DepartmentID)
			}
			seenDepts[a.DepartmentID] = struct{}{}
			if a.IsPrimary {
				primaries++
			}
		}
		if primaries > 1 {
			return ErrMultiplePrimaries.WithDetails(fmt.Sprintf("axis %s has %d primaries", axis, primaries))
		}
	}
	return nil
}

// HasUserType reports whether t is among the principal's user types.
func (h *RoleHierarchy) HasUserType(t UserType) bool {
	for _, ut := range h.AllUserTypes {
		if ut == t {
			return true
		}
	}
	return false
}

// Assignment returns the principal's assignment for the given department,
// searching every axis. The hierarchy invariant guarantees at most one match.
func (h *RoleHierarchy) Assignment(departmentID string) (DepartmentRoleAssignment, bool) {
	if departmentID == "" {
		return DepartmentRoleAssignment{}, false
	}
	for _, axis := range h.axes() {
		for _, a := range h.DepartmentRoles[axis].Assignments {
			if a.DepartmentID == departmentID {
				return a, true
			}
		}
	}
	return DepartmentRoleAssignment{}, false
}

// Departments returns every department assignment across all axes in a
// stable order (axes sorted, assignments in declaration order).
func (h *RoleHierarchy) Departments() []DepartmentRoleAssignment {
	var out []DepartmentRoleAssignment
	for _, axis := range h.axes() {
		out = append(out, h.DepartmentRoles[axis].Assignments...)
	}
	return out
}

// axes returns the axis keys in a deterministic order. Map iteration order
// must never leak into resolver output.
func (h *RoleHierarchy) axes() []UserType {
	order := []UserType{UserTypeLearner, UserTypeStaff, UserTypeGlobalAdmin}
	var out []UserType
	for _, axis := range order {
		if _, ok := h.DepartmentRoles[axis]; ok {
			out = append(out, axis)
		}
	}
	return out
}
