package constants

type ContextKey string

const (
	RoleHierarchyKey ContextKey = "roleHierarchy"
	LoggerKey        ContextKey = "logger"
	ParamsKey        ContextKey = "params"
	NavTreeKey       ContextKey = "navTree"
	SwitchStatusKey  ContextKey = "switchStatus"
)
