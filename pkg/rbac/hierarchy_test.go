package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHierarchy_Validate(t *testing.T) {
	t.Run("valid hierarchy", func(t *testing.T) {
		require.NoError(t, hierarchyFixture().Validate())
	})

	t.Run("empty user types", func(t *testing.T) {
		h := &RoleHierarchy{PrimaryUserType: UserTypeStaff}
		assert.True(t, errors.Is(h.Validate(), ErrNoUserTypes))
	})

	t.Run("primary not in all user types", func(t *testing.T) {
		h := &RoleHierarchy{
			PrimaryUserType: UserTypeGlobalAdmin,
			AllUserTypes:    []UserType{UserTypeStaff},
		}
		assert.True(t, errors.Is(h.Validate(), ErrPrimaryTypeMissing))
	})

	t.Run("unknown user type", func(t *testing.T) {
		h := &RoleHierarchy{
			PrimaryUserType: "guest",
			AllUserTypes:    []UserType{"guest"},
		}
		assert.True(t, errors.Is(h.Validate(), ErrInvalidUserType))
	})

	t.Run("duplicate department assignment", func(t *testing.T) {
		h := hierarchyFixture()
		group := h.DepartmentRoles[UserTypeStaff]
		group.Assignments = append(group.Assignments, DepartmentRoleAssignment{DepartmentID: "dept-1"})
		h.DepartmentRoles[UserTypeStaff] = group
		assert.True(t, errors.Is(h.Validate(), ErrDuplicateDept))
	})

	t.Run("duplicate department across axes", func(t *testing.T) {
		h := hierarchyFixture()
		h.DepartmentRoles[UserTypeLearner] = RoleGroup{
			Assignments: []DepartmentRoleAssignment{{DepartmentID: "dept-1"}},
		}
		assert.True(t, errors.Is(h.Validate(), ErrDuplicateDept))
	})

	t.Run("multiple primaries in one group", func(t *testing.T) {
		h := hierarchyFixture()
		group := h.DepartmentRoles[UserTypeStaff]
		group.Assignments = append(group.Assignments, DepartmentRoleAssignment{
			DepartmentID: "dept-2",
			IsPrimary:    true,
		})
		h.DepartmentRoles[UserTypeStaff] = group
		assert.True(t, errors.Is(h.Validate(), ErrMultiplePrimaries))
	})
}

func TestRoleHierarchy_Assignment(t *testing.T) {
	h := hierarchyFixture()

	a, ok := h.Assignment("dept-1")
	require.True(t, ok)
	assert.Equal(t, "Mathematics", a.DepartmentName)

	_, ok = h.Assignment("dept-404")
	assert.False(t, ok)

	_, ok = h.Assignment("")
	assert.False(t, ok)
}

func TestRoleHierarchy_Departments(t *testing.T) {
	h := hierarchyFixture()
	h.DepartmentRoles[UserTypeLearner] = RoleGroup{
		Assignments: []DepartmentRoleAssignment{{DepartmentID: "dept-9"}},
	}

	depts := h.Departments()
	require.Len(t, depts, 2)
	// learner axis always sorts before staff, independent of map order
	assert.Equal(t, "dept-9", depts[0].DepartmentID)
	assert.Equal(t, "dept-1", depts[1].DepartmentID)
}

func TestUserType_IsValid(t *testing.T) {
	assert.True(t, UserTypeLearner.IsValid())
	assert.True(t, UserTypeStaff.IsValid())
	assert.True(t, UserTypeGlobalAdmin.IsValid())
	assert.False(t, UserType("guest").IsValid())
}
