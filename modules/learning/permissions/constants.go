package permissions

// Permission strings follow the "resource:action" form the evaluator
// understands; "resource:*" grants every action on the resource.
const (
	CourseView   = "course:view"
	CourseManage = "course:manage"

	ExerciseView   = "exercise:view"
	ExerciseManage = "exercise:manage"

	EnrollmentView   = "enrollment:view"
	EnrollmentManage = "enrollment:manage"

	GradingView   = "grading:view"
	GradingManage = "grading:manage"

	DepartmentView   = "department:view"
	DepartmentManage = "department:manage"

	ReportsView   = "reports:view"
	ReportsExport = "reports:export"

	UserManage = "user:manage"
)

// Wildcard grants handed to elevated roles.
const (
	CourseAll     = "course:*"
	GradingAll    = "grading:*"
	ReportsAll    = "reports:*"
	DepartmentAll = "department:*"
)

var All = []string{
	CourseView,
	CourseManage,
	ExerciseView,
	ExerciseManage,
	EnrollmentView,
	EnrollmentManage,
	GradingView,
	GradingManage,
	DepartmentView,
	DepartmentManage,
	ReportsView,
	ReportsExport,
	UserManage,
}
