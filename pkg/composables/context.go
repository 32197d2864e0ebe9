package composables

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/classhub/classhub/pkg/constants"
	"github.com/classhub/classhub/pkg/department"
	"github.com/classhub/classhub/pkg/rbac"
	"github.com/classhub/classhub/pkg/sidebar"
)

var (
	ErrNoRoleHierarchy = errors.New("role hierarchy not found in context")
	ErrNoLogger        = errors.New("logger not found")
)

// WithRoleHierarchy attaches the principal's role hierarchy snapshot.
func WithRoleHierarchy(ctx context.Context, h *rbac.RoleHierarchy) context.Context {
	return context.WithValue(ctx, constants.RoleHierarchyKey, h)
}

// UseRoleHierarchy returns the role hierarchy snapshot from the context.
func UseRoleHierarchy(ctx context.Context) (*rbac.RoleHierarchy, error) {
	h, ok := ctx.Value(constants.RoleHierarchyKey).(*rbac.RoleHierarchy)
	if !ok || h == nil {
		return nil, ErrNoRoleHierarchy
	}
	return h, nil
}

// WithLogger attaches a request-scoped logger entry.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the request-scoped logger. Panics when absent: a request
// without a logger is a wiring bug, not a runtime condition.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic(ErrNoLogger)
	}
	return logger.(*logrus.Entry)
}

// WithNavTree attaches the resolved navigation tree.
func WithNavTree(ctx context.Context, tree *sidebar.NavTree) context.Context {
	return context.WithValue(ctx, constants.NavTreeKey, tree)
}

// UseNavTree returns the resolved navigation tree from the context.
// The second return value is false when no tree was resolved for the request
// (unauthenticated, or the hierarchy failed validation).
func UseNavTree(ctx context.Context) (*sidebar.NavTree, bool) {
	tree, ok := ctx.Value(constants.NavTreeKey).(*sidebar.NavTree)
	return tree, ok && tree != nil
}

// WithSwitchStatus attaches the department switch state snapshot.
func WithSwitchStatus(ctx context.Context, status department.Status) context.Context {
	return context.WithValue(ctx, constants.SwitchStatusKey, status)
}

// UseSwitchStatus returns the department switch state snapshot, defaulting to
// Idle when absent.
func UseSwitchStatus(ctx context.Context) department.Status {
	status, ok := ctx.Value(constants.SwitchStatusKey).(department.Status)
	if !ok {
		return department.Status{State: department.StateIdle}
	}
	return status
}
