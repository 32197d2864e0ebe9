package learning

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/classhub/classhub/modules/learning/permissions"
	"github.com/classhub/classhub/pkg/rbac"
	"github.com/classhub/classhub/pkg/sidebar"
	"github.com/classhub/classhub/pkg/types"
)

// Section ids referenced by the sidebar expansion groups.
const (
	SectionMyLearning  = "my-learning"
	SectionTeaching    = "teaching"
	SectionDepartments = "departments"
	SectionAdminUsers  = "admin-users"
	SectionAdminOrg    = "admin-org"
	SectionAdminData   = "admin-data"
)

var MyCoursesLink = types.NavigationItem{
	ID:           "my-courses",
	Label:        "NavigationLinks.MyCourses",
	Icon:         icons.GraduationCap(icons.Props{Size: "20"}),
	PathTemplate: "/learn/my-courses",
}

var MyExercisesLink = types.NavigationItem{
	ID:                 "my-exercises",
	Label:              "NavigationLinks.MyExercises",
	Icon:               icons.Notebook(icons.Props{Size: "20"}),
	PathTemplate:       "/learn/exercises",
	RequiredPermission: permissions.ExerciseView,
	Scope:              types.ScopeGlobal,
}

var ProgressLink = types.NavigationItem{
	ID:           "progress",
	Label:        "NavigationLinks.Progress",
	Icon:         icons.ChartBar(icons.Props{Size: "20"}),
	PathTemplate: "/learn/progress",
}

var CoursesLink = types.NavigationItem{
	ID:                 "courses",
	Label:              "NavigationLinks.Courses",
	Icon:               icons.Books(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/courses",
	RequiredPermission: permissions.CourseView,
	Scope:              types.ScopeGlobal,
	UserTypes:          []rbac.UserType{rbac.UserTypeStaff, rbac.UserTypeGlobalAdmin},
}

var ExercisesLink = types.NavigationItem{
	ID:                 "exercises",
	Label:              "NavigationLinks.Exercises",
	Icon:               icons.PencilSimple(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/exercises",
	RequiredPermission: permissions.ExerciseManage,
	Scope:              types.ScopeGlobal,
	UserTypes:          []rbac.UserType{rbac.UserTypeStaff, rbac.UserTypeGlobalAdmin},
}

var GradingLink = types.NavigationItem{
	ID:                 "grading",
	Label:              "NavigationLinks.Grading",
	Icon:               icons.Exam(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/departments/:departmentId/grading",
	RequiredPermission: permissions.GradingView,
	Scope:              types.ScopeDepartment,
	UserTypes:          []rbac.UserType{rbac.UserTypeStaff},
}

var EnrollmentsLink = types.NavigationItem{
	ID:                 "enrollments",
	Label:              "NavigationLinks.Enrollments",
	Icon:               icons.Users(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/departments/:departmentId/enrollments",
	RequiredPermission: permissions.EnrollmentView,
	Scope:              types.ScopeDepartment,
	UserTypes:          []rbac.UserType{rbac.UserTypeStaff},
}

// MyLearningLink appears on the staff dashboard too; staff without a learner
// persona see it grayed out rather than hidden.
var MyLearningLink = types.NavigationItem{
	ID:           "my-learning",
	Label:        "NavigationLinks.MyLearning",
	Icon:         icons.Student(icons.Props{Size: "20"}),
	PathTemplate: "/learn",
	UserTypePaths: map[rbac.UserType]string{
		rbac.UserTypeLearner: "/learn/my-courses",
	},
	UserTypes:            []rbac.UserType{rbac.UserTypeLearner},
	ShowWhenUnauthorized: true,
}

var UsersLink = types.NavigationItem{
	ID:                 "users",
	Label:              "NavigationLinks.Users",
	Icon:               icons.Users(icons.Props{Size: "20"}),
	PathTemplate:       "/admin/users",
	RequiredPermission: permissions.UserManage,
	Scope:              types.ScopeGlobal,
	UserTypes:          []rbac.UserType{rbac.UserTypeGlobalAdmin},
}

var DepartmentsLink = types.NavigationItem{
	ID:                 "departments",
	Label:              "NavigationLinks.Departments",
	Icon:               icons.Buildings(icons.Props{Size: "20"}),
	PathTemplate:       "/admin/departments",
	RequiredPermission: permissions.DepartmentView,
	Scope:              types.ScopeGlobal,
	UserTypes:          []rbac.UserType{rbac.UserTypeGlobalAdmin},
}

var ReportsLink = types.NavigationItem{
	ID:                 "reports",
	Label:              "NavigationLinks.Reports",
	Icon:               icons.ChartLine(icons.Props{Size: "20"}),
	PathTemplate:       "/admin/reports",
	RequiredPermission: permissions.ReportsView,
	Scope:              types.ScopeGlobal,
	UserTypes:          []rbac.UserType{rbac.UserTypeGlobalAdmin},
}

// Department actions: flat entries meaningful only while a department is the
// active context.
var GradeBookAction = types.DepartmentAction{
	ID:                 "grade-book",
	Label:              "DepartmentActions.GradeBook",
	Icon:               icons.Exam(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/departments/:departmentId/grade-book",
	RequiredPermission: permissions.GradingView,
	Dashboards:         []types.DashboardArea{types.DashboardStaff},
}

var EnrollLearnersAction = types.DepartmentAction{
	ID:                 "enroll-learners",
	Label:              "DepartmentActions.EnrollLearners",
	Icon:               icons.UserPlus(icons.Props{Size: "20"}),
	PathTemplate:       "/staff/departments/:departmentId/enroll",
	RequiredPermission: permissions.EnrollmentManage,
	Dashboards:         []types.DashboardArea{types.DashboardStaff, types.DashboardAdmin},
}

var DepartmentSettingsAction = types.DepartmentAction{
	ID:                 "department-settings",
	Label:              "DepartmentActions.Settings",
	Icon:               icons.Gear(icons.Props{Size: "20"}),
	PathTemplate:       "/admin/departments/:departmentId/settings",
	RequiredPermission: permissions.DepartmentManage,
	Dashboards:         []types.DashboardArea{types.DashboardAdmin},
}

// NavSections holds the fixed ordered section lists, disjoint per dashboard
// area.
var NavSections = map[types.DashboardArea][]types.NavigationSection{
	types.DashboardLearner: {
		{
			ID:              SectionMyLearning,
			Label:           "NavigationSections.MyLearning",
			Collapsible:     true,
			DefaultExpanded: true,
			Items:           []types.NavigationItem{MyCoursesLink, MyExercisesLink, ProgressLink},
		},
	},
	types.DashboardStaff: {
		{
			ID:              SectionTeaching,
			Label:           "NavigationSections.Teaching",
			Collapsible:     true,
			DefaultExpanded: true,
			Items:           []types.NavigationItem{CoursesLink, ExercisesLink, MyLearningLink},
		},
		{
			ID:              SectionDepartments,
			Label:           "NavigationSections.Departments",
			Collapsible:     true,
			DefaultExpanded: true,
			Items:           []types.NavigationItem{GradingLink, EnrollmentsLink},
		},
	},
	types.DashboardAdmin: {
		{
			ID:          SectionAdminUsers,
			Label:       "NavigationSections.People",
			Collapsible: true,
			Items:       []types.NavigationItem{UsersLink},
		},
		{
			ID:          SectionAdminOrg,
			Label:       "NavigationSections.Organization",
			Collapsible: true,
			Items:       []types.NavigationItem{DepartmentsLink},
		},
		{
			ID:          SectionAdminData,
			Label:       "NavigationSections.Insights",
			Collapsible: true,
			Items:       []types.NavigationItem{ReportsLink},
		},
	},
}

var DepartmentActions = []types.DepartmentAction{
	GradeBookAction,
	EnrollLearnersAction,
	DepartmentSettingsAction,
}

// NavConfig assembles the full static configuration the resolver consumes.
func NavConfig() *sidebar.Config {
	return &sidebar.Config{
		Areas:             NavSections,
		DepartmentActions: DepartmentActions,
	}
}

// ExpansionGroups declares the sidebar expansion policy: the staff sections
// toggle independently, the admin sections behave as a single-open accordion.
func ExpansionGroups() []sidebar.Group {
	return []sidebar.Group{
		{
			ID:       "staff",
			Mode:     sidebar.ModeIndependent,
			Sections: []string{SectionTeaching, SectionDepartments},
		},
		{
			ID:       "admin",
			Mode:     sidebar.ModeAccordion,
			Sections: []string{SectionAdminUsers, SectionAdminOrg, SectionAdminData},
		},
	}
}
