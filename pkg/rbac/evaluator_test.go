package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hierarchyFixture() *RoleHierarchy {
	return &RoleHierarchy{
		PrimaryUserType: UserTypeStaff,
		AllUserTypes:    []UserType{UserTypeStaff, UserTypeLearner},
		AllPermissions:  []string{"course:view", "reports:*"},
		DepartmentRoles: map[UserType]RoleGroup{
			UserTypeStaff: {
				Assignments: []DepartmentRoleAssignment{
					{
						DepartmentID:   "dept-1",
						DepartmentName: "Mathematics",
						IsPrimary:      true,
						Roles: []Role{
							{ID: "r1", Name: "Instructor", Permissions: []string{"exercise:manage", "grading:*"}},
							{ID: "r2", Name: "Coordinator", Permissions: []string{"exercise:manage", "enrollment:view"}},
						},
					},
				},
			},
		},
	}
}

func TestEvaluator_HasGlobalPermission(t *testing.T) {
	e := NewEvaluator(hierarchyFixture())

	t.Run("exact match", func(t *testing.T) {
		assert.True(t, e.HasGlobalPermission("course:view"))
		assert.False(t, e.HasGlobalPermission("course:edit"))
	})

	t.Run("wildcard match", func(t *testing.T) {
		assert.True(t, e.HasGlobalPermission("reports:export"))
		assert.True(t, e.HasGlobalPermission("reports:view"))
		assert.False(t, e.HasGlobalPermission("report:view"))
	})

	t.Run("wildcard grant does not match its bare prefix", func(t *testing.T) {
		// "reports:*" matches "reports:x", not "reports".
		assert.False(t, e.HasGlobalPermission("reports"))
	})

	t.Run("malformed inputs evaluate to false", func(t *testing.T) {
		assert.False(t, e.HasGlobalPermission(""))
		assert.False(t, e.HasGlobalPermission("   "))
	})

	t.Run("bare star grant matches nothing", func(t *testing.T) {
		e := NewEvaluator(&RoleHierarchy{AllPermissions: []string{"*", ":*"}})
		assert.False(t, e.HasGlobalPermission("course:view"))
		assert.True(t, e.HasGlobalPermission("*"))
	})

	t.Run("nil hierarchy", func(t *testing.T) {
		assert.False(t, NewEvaluator(nil).HasGlobalPermission("course:view"))
	})
}

func TestEvaluator_HasDepartmentPermission(t *testing.T) {
	e := NewEvaluator(hierarchyFixture())

	t.Run("union of role permissions", func(t *testing.T) {
		assert.True(t, e.HasDepartmentPermission("exercise:manage", "dept-1"))
		assert.True(t, e.HasDepartmentPermission("enrollment:view", "dept-1"))
	})

	t.Run("wildcard within department", func(t *testing.T) {
		assert.True(t, e.HasDepartmentPermission("grading:edit", "dept-1"))
	})

	t.Run("global grants do not leak into departments", func(t *testing.T) {
		assert.False(t, e.HasDepartmentPermission("course:view", "dept-1"))
	})

	t.Run("unknown department holds nothing", func(t *testing.T) {
		assert.False(t, e.HasDepartmentPermission("exercise:manage", "dept-404"))
		assert.False(t, e.HasDepartmentPermission("exercise:manage", ""))
	})
}

func TestDepartmentRoleAssignment_Permissions(t *testing.T) {
	a := DepartmentRoleAssignment{
		Roles: []Role{
			{Permissions: []string{"a:x", "a:y"}},
			{Permissions: []string{"a:y", "a:z"}},
		},
	}
	assert.Equal(t, []string{"a:x", "a:y", "a:z"}, a.Permissions())
}
