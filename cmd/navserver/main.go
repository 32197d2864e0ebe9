package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	"github.com/classhub/classhub/modules/learning"
	"github.com/classhub/classhub/pkg/composables"
	"github.com/classhub/classhub/pkg/configuration"
	"github.com/classhub/classhub/pkg/department"
	"github.com/classhub/classhub/pkg/eventbus"
	"github.com/classhub/classhub/pkg/middleware"
	"github.com/classhub/classhub/pkg/rbac"
	"github.com/classhub/classhub/pkg/sidebar"
)

var errDepartmentNotFound = errors.New("department not found")

// demoHierarchy is a stand-in for the auth/session collaborator that would
// normally supply the snapshot.
func demoHierarchy(userID uuid.UUID) *rbac.RoleHierarchy {
	return &rbac.RoleHierarchy{
		UserID:          userID,
		PrimaryUserType: rbac.UserTypeStaff,
		AllUserTypes:    []rbac.UserType{rbac.UserTypeStaff, rbac.UserTypeLearner},
		AllPermissions:  []string{"course:view", "exercise:view", "exercise:manage"},
		DepartmentRoles: map[rbac.UserType]rbac.RoleGroup{
			rbac.UserTypeStaff: {
				Assignments: []rbac.DepartmentRoleAssignment{
					{
						DepartmentID:   "dept-math",
						DepartmentName: "Mathematics",
						IsPrimary:      true,
						Roles: []rbac.Role{
							{ID: "instructor", Name: "Instructor", Permissions: []string{"grading:*", "enrollment:view"}},
						},
					},
					{
						DepartmentID:   "dept-physics",
						DepartmentName: "Physics",
						Roles: []rbac.Role{
							{ID: "assistant", Name: "Assistant", Permissions: []string{"grading:view"}},
						},
					},
				},
			},
		},
	}
}

func newStore(conf *configuration.Configuration) (department.Store, error) {
	switch conf.SelectionStore.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: conf.SelectionStore.RedisURL})
		return department.NewRedisStore(client, conf.SelectionStore.KeyPrefix), nil
	case "postgres":
		pool, err := pgxpool.New(context.Background(), conf.Database.Opts)
		if err != nil {
			return nil, err
		}
		return department.NewPgStore(pool), nil
	default:
		return department.NewInMemoryStore(), nil
	}
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	messages := map[string]string{
		"NavigationSections.MyLearning":    "My learning",
		"NavigationSections.Teaching":      "Teaching",
		"NavigationSections.Departments":   "Departments",
		"NavigationSections.People":        "People",
		"NavigationSections.Organization":  "Organization",
		"NavigationSections.Insights":      "Insights",
		"NavigationLinks.MyCourses":        "My courses",
		"NavigationLinks.MyExercises":      "My exercises",
		"NavigationLinks.Progress":         "Progress",
		"NavigationLinks.Courses":          "Courses",
		"NavigationLinks.Exercises":        "Exercises",
		"NavigationLinks.Grading":          "Grading",
		"NavigationLinks.Enrollments":      "Enrollments",
		"NavigationLinks.MyLearning":       "My learning",
		"NavigationLinks.Users":            "Users",
		"NavigationLinks.Departments":      "Departments",
		"NavigationLinks.Reports":          "Reports",
		"DepartmentActions.GradeBook":      "Grade book",
		"DepartmentActions.EnrollLearners": "Enroll learners",
		"DepartmentActions.Settings":       "Department settings",
	}
	for id, other := range messages {
		if err := bundle.AddMessages(language.English, &i18n.Message{ID: id, Other: other}); err != nil {
			log.Fatalf("i18n bundle: %v", err)
		}
	}
	return bundle
}

// itemView mirrors sidebar.Item minus the icon component, which is a
// render-layer value and not JSON-encodable.
type itemView struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Path    string `json:"path"`
	Visible bool   `json:"visible"`
	Enabled bool   `json:"enabled"`
}

type sectionView struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Expanded bool       `json:"expanded"`
	Items    []itemView `json:"items"`
}

type treeView struct {
	Area              string        `json:"area"`
	Sections          []sectionView `json:"sections"`
	DepartmentActions []itemView    `json:"departmentActions"`
}

func viewOf(tree *sidebar.NavTree, expansion *sidebar.ExpansionState) treeView {
	out := treeView{Area: string(tree.Area)}
	for _, section := range tree.Sections {
		sv := sectionView{
			ID:       section.ID,
			Label:    section.Label,
			Expanded: expansion.IsExpanded(section.ID),
		}
		for _, item := range section.Items {
			sv.Items = append(sv.Items, itemViewOf(item))
		}
		out.Sections = append(out.Sections, sv)
	}
	for _, action := range tree.DepartmentActions {
		out.DepartmentActions = append(out.DepartmentActions, itemViewOf(action))
	}
	return out
}

func itemViewOf(item sidebar.Item) itemView {
	return itemView{
		ID:      item.ID,
		Label:   item.Label,
		Path:    item.Path,
		Visible: item.Visible,
		Enabled: item.Enabled,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	store, err := newStore(conf)
	if err != nil {
		logger.WithError(err).Fatal("selection store init failed")
	}

	userID := uuid.New()
	hierarchy := demoHierarchy(userID)
	bus := eventbus.NewEventPublisher(logger)

	// Demo collaborator: accepts departments the principal is assigned to
	// after a short delay, rejects the rest.
	switchFn := func(ctx context.Context, departmentID string) error {
		select {
		case <-time.After(300 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
		if _, ok := hierarchy.Assignment(departmentID); !ok {
			return errDepartmentNotFound
		}
		return nil
	}

	controller := department.NewController(department.Options{
		Log:       logger,
		Bus:       bus,
		Switch:    switchFn,
		Store:     store,
		UserID:    userID,
		Hierarchy: hierarchy,
	})
	defer controller.Close()

	expansion := sidebar.NewExpansionState(learning.ExpansionGroups(), []string{
		learning.SectionMyLearning,
		learning.SectionTeaching,
		learning.SectionDepartments,
	})
	expansion.BindSwitchEvents(bus, learning.SectionDepartments)

	if id, ok := controller.RestoreLastSelection(context.Background()); ok {
		logger.WithField("department", id).Info("restored last department selection")
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ProvideLocalizer(newBundle(), language.English))
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := composables.WithRoleHierarchy(r.Context(), hierarchy)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Use(middleware.NavTree(logger, learning.NavConfig(), middleware.AreaFromPath, func(*http.Request) *department.Controller {
		return controller
	}))

	router.HandleFunc("/departments/{id}/switch", func(w http.ResponseWriter, r *http.Request) {
		err := controller.RequestSwitch(r.Context(), mux.Vars(r)["id"])
		switch {
		case err == nil:
			writeJSON(w, http.StatusAccepted, controller.Status())
		case err == department.ErrBusy:
			writeJSON(w, http.StatusConflict, controller.Status())
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}).Methods(http.MethodPost)

	router.HandleFunc("/switch/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controller.Status())
	}).Methods(http.MethodGet)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tree, ok := composables.UseNavTree(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no navigation tree"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"tree":   viewOf(tree, expansion),
			"switch": composables.UseSwitchStatus(r.Context()),
		})
	}).Methods(http.MethodGet)

	logger.Infof("navserver listening on %s", conf.SocketAddress)
	srv := &http.Server{
		Addr:         conf.SocketAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server stopped")
	}
}
