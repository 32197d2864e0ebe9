package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/classhub/classhub/pkg/composables"
	"github.com/classhub/classhub/pkg/department"
	"github.com/classhub/classhub/pkg/intl"
	"github.com/classhub/classhub/pkg/sidebar"
	"github.com/classhub/classhub/pkg/types"
)

// ControllerSource locates the department switch controller serving a
// request, typically keyed by the session user. May return nil when the
// request has no department context.
type ControllerSource func(r *http.Request) *department.Controller

// AreaFromPath maps the first path segment onto a dashboard area, defaulting
// to the learner dashboard.
func AreaFromPath(r *http.Request) types.DashboardArea {
	path := strings.TrimPrefix(r.URL.Path, "/")
	segment, _, _ := strings.Cut(path, "/")
	switch segment {
	case "admin":
		return types.DashboardAdmin
	case "staff":
		return types.DashboardStaff
	default:
		return types.DashboardLearner
	}
}

// NavTree resolves the sidebar navigation tree for each request and stores it
// in the request context, together with the current switch state. Requests
// without a role hierarchy pass through untouched; a hierarchy that fails
// validation yields no tree at all rather than a partially trusted one.
func NavTree(log *logrus.Logger, cfg *sidebar.Config, resolveArea func(*http.Request) types.DashboardArea, controllers ControllerSource) mux.MiddlewareFunc {
	if resolveArea == nil {
		resolveArea = AreaFromPath
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				hierarchy, err := composables.UseRoleHierarchy(ctx)
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}

				activeDepartmentID := ""
				status := department.Status{State: department.StateIdle}
				if controllers != nil {
					if c := controllers(r); c != nil {
						activeDepartmentID = c.ActiveDepartmentID()
						status = c.Status()
					}
				}

				tree, err := sidebar.Resolve(hierarchy, resolveArea(r), activeDepartmentID, cfg)
				if err != nil {
					log.WithError(err).Error("invalid role hierarchy, navigation suppressed")
					ctx = composables.WithSwitchStatus(ctx, status)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				localizeTree(r, tree)
				ctx = composables.WithNavTree(ctx, tree)
				ctx = composables.WithSwitchStatus(ctx, status)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

func localizeTree(r *http.Request, tree *sidebar.NavTree) {
	ctx := r.Context()
	for i := range tree.Sections {
		tree.Sections[i].Label = intl.T(ctx, tree.Sections[i].Label)
		for j := range tree.Sections[i].Items {
			tree.Sections[i].Items[j].Label = intl.T(ctx, tree.Sections[i].Items[j].Label)
		}
	}
	for i := range tree.DepartmentActions {
		tree.DepartmentActions[i].Label = intl.T(ctx, tree.DepartmentActions[i].Label)
	}
}
