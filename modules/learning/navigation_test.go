package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classhub/classhub/modules/learning/permissions"
	"github.com/classhub/classhub/pkg/rbac"
	"github.com/classhub/classhub/pkg/sidebar"
	"github.com/classhub/classhub/pkg/types"
)

func TestNavConfig_AreasAreDisjoint(t *testing.T) {
	seen := map[string]types.DashboardArea{}
	for area, sections := range NavSections {
		for _, section := range sections {
			if prev, ok := seen[section.ID]; ok {
				t.Fatalf("section %s configured for both %s and %s", section.ID, prev, area)
			}
			seen[section.ID] = area
		}
	}
}

func TestNavConfig_ResolvesForGlobalAdmin(t *testing.T) {
	h := &rbac.RoleHierarchy{
		PrimaryUserType: rbac.UserTypeGlobalAdmin,
		AllUserTypes:    []rbac.UserType{rbac.UserTypeGlobalAdmin},
		AllPermissions:  []string{permissions.UserManage, permissions.DepartmentAll, permissions.ReportsAll},
	}

	tree, err := sidebar.Resolve(h, types.DashboardAdmin, "", NavConfig())
	require.NoError(t, err)
	require.Len(t, tree.Sections, 3)

	for _, section := range tree.Sections {
		for _, item := range section.Items {
			assert.True(t, item.Visible, item.ID)
			assert.True(t, item.Enabled, item.ID)
		}
	}
}

func TestNavConfig_LearnerSeesNoStaffSections(t *testing.T) {
	h := &rbac.RoleHierarchy{
		PrimaryUserType: rbac.UserTypeLearner,
		AllUserTypes:    []rbac.UserType{rbac.UserTypeLearner},
	}

	tree, err := sidebar.Resolve(h, types.DashboardStaff, "", NavConfig())
	require.NoError(t, err)

	for _, section := range tree.Sections {
		for _, item := range section.Items {
			if item.ID == MyLearningLink.ID {
				// learner persona on the staff dashboard keeps its own entry
				assert.True(t, item.Enabled)
				assert.Equal(t, "/learn/my-courses", item.Path)
				continue
			}
			assert.False(t, item.Visible, item.ID)
		}
	}
}

func TestExpansionGroups_CoverConfiguredSections(t *testing.T) {
	known := map[string]bool{}
	for _, sections := range NavSections {
		for _, section := range sections {
			known[section.ID] = true
		}
	}
	for _, group := range ExpansionGroups() {
		for _, id := range group.Sections {
			assert.True(t, known[id], id)
		}
	}
}
