package sidebar

import (
	"github.com/a-h/templ"

	"github.com/classhub/classhub/pkg/rbac"
	"github.com/classhub/classhub/pkg/types"
)

// Config is the static navigation configuration the resolver derives trees
// from: the fixed ordered section lists per dashboard area plus the flat
// department actions.
type Config struct {
	Areas             map[types.DashboardArea][]types.NavigationSection
	DepartmentActions []types.DepartmentAction
}

// Item is one resolved navigation entry: path substituted, visibility and
// enablement decided.
type Item struct {
	ID      string
	Label   string
	Icon    templ.Component
	Path    string
	Visible bool
	Enabled bool
}

// Section is a resolved group of items, in configuration order.
type Section struct {
	ID              string
	Label           string
	Collapsible     bool
	DefaultExpanded bool
	Items           []Item
}

// NavTree is the resolver output consumed by the rendering layer.
type NavTree struct {
	Area              types.DashboardArea
	Sections          []Section
	DepartmentActions []Item
}

// Resolve derives the navigation tree for one dashboard area from an
// immutable hierarchy snapshot and the committed active department.
//
// Resolution is pure and deterministic: identical inputs always produce
// deep-equal trees, and nothing is cached between passes. The hierarchy is
// validated first; a tree is never derived from an invalid one.
func Resolve(h *rbac.RoleHierarchy, area types.DashboardArea, activeDepartmentID string, cfg *Config) (*NavTree, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	evaluator := rbac.NewEvaluator(h)
	tree := &NavTree{Area: area}

	for _, section := range cfg.Areas[area] {
		resolved := Section{
			ID:              section.ID,
			Label:           section.Label,
			Collapsible:     section.Collapsible,
			DefaultExpanded: section.DefaultExpanded,
			Items:           make([]Item, 0, len(section.Items)),
		}
		for _, item := range section.Items {
			resolved.Items = append(resolved.Items, resolveItem(item, h, evaluator, activeDepartmentID))
		}
		tree.Sections = append(tree.Sections, resolved)
	}

	tree.DepartmentActions = resolveDepartmentActions(cfg.DepartmentActions, area, evaluator, activeDepartmentID)
	return tree, nil
}

func resolveItem(item types.NavigationItem, h *rbac.RoleHierarchy, evaluator *rbac.Evaluator, activeDepartmentID string) Item {
	typeOK := len(item.UserTypes) == 0 || intersects(item.UserTypes, h)

	visible := typeOK
	if item.ShowWhenUnauthorized {
		visible = true
	}

	enabled := typeOK
	if enabled && item.RequiredPermission != "" {
		switch item.Scope {
		case types.ScopeDepartment:
			enabled = activeDepartmentID != "" &&
				evaluator.HasDepartmentPermission(item.RequiredPermission, activeDepartmentID)
		default:
			enabled = evaluator.HasGlobalPermission(item.RequiredPermission)
		}
	}
	if enabled && item.RequiredPermission == "" && item.Scope == types.ScopeDepartment {
		enabled = activeDepartmentID != ""
	}

	return Item{
		ID:      item.ID,
		Label:   item.Label,
		Icon:    item.Icon,
		Path:    types.ResolvePath(item.PathFor(h), activeDepartmentID),
		Visible: visible,
		Enabled: enabled,
	}
}

func resolveDepartmentActions(actions []types.DepartmentAction, area types.DashboardArea, evaluator *rbac.Evaluator, activeDepartmentID string) []Item {
	if activeDepartmentID == "" {
		return nil
	}
	var out []Item
	for _, action := range actions {
		if !action.ForDashboard(area) {
			continue
		}
		if action.RequiredPermission != "" &&
			!evaluator.HasDepartmentPermission(action.RequiredPermission, activeDepartmentID) {
			continue
		}
		out = append(out, Item{
			ID:      action.ID,
			Label:   action.Label,
			Icon:    action.Icon,
			Path:    types.ResolvePath(action.PathTemplate, activeDepartmentID),
			Visible: true,
			Enabled: true,
		})
	}
	return out
}

func intersects(userTypes []rbac.UserType, h *rbac.RoleHierarchy) bool {
	for _, t := range userTypes {
		if h.HasUserType(t) {
			return true
		}
	}
	return false
}
