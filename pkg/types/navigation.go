package types

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/classhub/classhub/pkg/rbac"
)

// DashboardArea is the active top-level section of the application. Each area
// owns a fixed, disjoint list of navigation sections.
type DashboardArea string

const (
	DashboardLearner DashboardArea = "learner"
	DashboardStaff   DashboardArea = "staff"
	DashboardAdmin   DashboardArea = "admin"
)

func (a DashboardArea) IsValid() bool {
	switch a {
	case DashboardLearner, DashboardStaff, DashboardAdmin:
		return true
	}
	return false
}

// Scope declares which permission axis guards a navigation item.
type Scope string

const (
	ScopeGlobal     Scope = "global"
	ScopeDepartment Scope = "department"
)

// departmentParam is the path template placeholder substituted with the
// active department id.
const departmentParam = ":departmentId"

// NavigationItem is the static declaration of one sidebar entry. Labels are
// translation keys resolved by the rendering layer.
type NavigationItem struct {
	ID           string
	Label        string
	Icon         templ.Component
	PathTemplate string
	// UserTypePaths overrides PathTemplate per user type, forming a pure
	// (userType, dashboardArea) -> path lookup together with the per-area
	// section lists.
	UserTypePaths      map[rbac.UserType]string
	RequiredPermission string
	Scope              Scope
	// UserTypes restricts visibility; empty means any type qualifies.
	UserTypes []rbac.UserType
	// ShowWhenUnauthorized keeps the item visible but disabled when the
	// user-type check fails, instead of omitting it.
	ShowWhenUnauthorized bool
}

// PathFor resolves the item's path for the given hierarchy: the first of the
// item's user types held by the principal wins its override, then the
// principal's primary type, then the plain template.
func (n NavigationItem) PathFor(h *rbac.RoleHierarchy) string {
	if len(n.UserTypePaths) == 0 || h == nil {
		return n.PathTemplate
	}
	for _, t := range n.UserTypes {
		if h.HasUserType(t) {
			if path, ok := n.UserTypePaths[t]; ok {
				return path
			}
		}
	}
	if path, ok := n.UserTypePaths[h.PrimaryUserType]; ok {
		return path
	}
	return n.PathTemplate
}

// NavigationSection is a named group of items, independently collapsible.
type NavigationSection struct {
	ID              string
	Label           string
	Collapsible     bool
	DefaultExpanded bool
	Items           []NavigationItem
}

// DepartmentAction is a flat navigation entry meaningful only while a
// department is the active context. Its path is parameterized by the
// department id.
type DepartmentAction struct {
	ID                 string
	Label              string
	Icon               templ.Component
	PathTemplate       string
	RequiredPermission string
	Dashboards         []DashboardArea
}

// ForDashboard reports whether the action belongs to the given area.
func (a DepartmentAction) ForDashboard(area DashboardArea) bool {
	for _, d := range a.Dashboards {
		if d == area {
			return true
		}
	}
	return false
}

// ResolvePath substitutes the department placeholder in a path template.
func ResolvePath(template, departmentID string) string {
	if departmentID == "" {
		return template
	}
	return strings.ReplaceAll(template, departmentParam, departmentID)
}
