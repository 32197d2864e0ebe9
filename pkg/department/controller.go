package department

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/classhub/classhub/pkg/eventbus"
	"github.com/classhub/classhub/pkg/rbac"
)

// State identifies the controller's position in the switch lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateSwitching State = "switching"
	StateError     State = "error"
)

// Status is a snapshot of the switch state machine. Target is set for
// Switching and Error; Message only for Error.
type Status struct {
	State   State
	Target  string
	Message string
}

// SwitchFunc is the external department-context collaborator. It returns nil
// on success and a human-readable error on failure. The controller guarantees
// at most one in-flight call per target.
type SwitchFunc func(ctx context.Context, departmentID string) error

var (
	// ErrBusy is returned when a switch to a different department is
	// requested while another one is in flight. The first operation keeps
	// running; callers retry once it settles.
	ErrBusy = errors.New("department: switch already in progress")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("department: controller closed")
	// ErrNoSwitcher is returned when the controller has no collaborator.
	ErrNoSwitcher = errors.New("department: no switch collaborator configured")
)

// Options configure a Controller.
type Options struct {
	Log       *logrus.Logger
	Bus       eventbus.EventBus
	Switch    SwitchFunc
	Store     Store
	UserID    uuid.UUID
	Hierarchy *rbac.RoleHierarchy
}

// Controller coordinates the asynchronous change of the active department
// context. It owns the DepartmentSwitchState and the committed active
// department id; the navigation resolver only ever sees committed values.
type Controller struct {
	mu        sync.Mutex
	log       *logrus.Logger
	bus       eventbus.EventBus
	switchFn  SwitchFunc
	store     Store
	userID    uuid.UUID
	hierarchy *rbac.RoleHierarchy

	status Status
	active string
	closed bool
	// seq invalidates in-flight completions after Close or a later
	// accepted request.
	seq uint64
}

func NewController(opts Options) *Controller {
	log := opts.Log
	if log == nil {
		log = logrus.New()
	}
	return &Controller{
		log:       log,
		bus:       opts.Bus,
		switchFn:  opts.Switch,
		store:     opts.Store,
		userID:    opts.UserID,
		hierarchy: opts.Hierarchy,
		status:    Status{State: StateIdle},
	}
}

// Status returns the current switch state snapshot.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ActiveDepartmentID returns the last committed department id, or "" when no
// department is selected.
func (c *Controller) ActiveDepartmentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// RequestSwitch asks the controller to make target the active department.
//
// Re-selecting the current department clears the selection locally without
// calling the collaborator. Requesting the target already in flight joins
// that operation. Requesting a different target while one is in flight is
// rejected with ErrBusy (the documented concurrent-switch policy).
func (c *Controller) RequestSwitch(ctx context.Context, target string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}

	// Re-selecting the active department, or passing an empty target,
	// clears the selection locally.
	if target == c.active || target == "" {
		if c.status.State == StateSwitching {
			c.mu.Unlock()
			return ErrBusy
		}
		previous := c.active
		c.active = ""
		c.status = Status{State: StateIdle}
		c.mu.Unlock()
		if previous != "" {
			c.publish(SelectionCleared{Previous: previous})
		}
		return nil
	}

	if c.status.State == StateSwitching {
		if c.status.Target == target {
			// Same target: observe the existing in-flight operation.
			c.mu.Unlock()
			return nil
		}
		c.mu.Unlock()
		return ErrBusy
	}

	if c.switchFn == nil {
		c.mu.Unlock()
		return ErrNoSwitcher
	}

	c.seq++
	seq := c.seq
	c.status = Status{State: StateSwitching, Target: target}
	c.mu.Unlock()

	c.publish(SwitchStarted{Target: target})
	go c.runSwitch(ctx, target, seq)
	return nil
}

func (c *Controller) runSwitch(ctx context.Context, target string, seq uint64) {
	err := c.switchFn(ctx, target)

	c.mu.Lock()
	if c.closed || c.seq != seq {
		// Teardown happened while the collaborator was running; drop the
		// outcome on the floor.
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.status = Status{State: StateError, Target: target, Message: err.Error()}
		c.mu.Unlock()
		c.log.WithFields(logrus.Fields{
			"department": target,
			"error":      err.Error(),
		}).Warn("department switch failed")
		c.publish(SwitchFailed{Target: target, Message: err.Error()})
		return
	}

	c.active = target
	c.status = Status{State: StateIdle}
	store, userID := c.store, c.userID
	c.mu.Unlock()

	if store != nil {
		if err := store.Set(ctx, userID, target); err != nil {
			c.log.WithError(err).Error("failed to persist department selection")
		}
	}
	c.publish(SwitchCommitted{Target: target})
}

// RestoreLastSelection restores the persisted department for the controller's
// user, if any. The restore is local only: it sets the active department
// without invoking the switch collaborator, so the first manual switch still
// runs the full protocol. A persisted id no longer among the principal's
// assignments is ignored.
func (c *Controller) RestoreLastSelection(ctx context.Context) (string, bool) {
	c.mu.Lock()
	if c.closed || c.active != "" || c.status.State == StateSwitching || c.store == nil || c.hierarchy == nil {
		c.mu.Unlock()
		return "", false
	}
	store, userID, hierarchy := c.store, c.userID, c.hierarchy
	c.mu.Unlock()

	if len(hierarchy.Departments()) == 0 {
		return "", false
	}
	id, err := store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.log.WithError(err).Error("failed to read persisted department selection")
		}
		return "", false
	}
	if _, ok := hierarchy.Assignment(id); !ok {
		return "", false
	}

	c.mu.Lock()
	if c.closed || c.active != "" || c.status.State == StateSwitching {
		c.mu.Unlock()
		return "", false
	}
	c.active = id
	c.mu.Unlock()

	c.publish(SelectionRestored{DepartmentID: id})
	return id, true
}

// Close tears the controller down. Outcomes of in-flight switches are
// suppressed; the underlying collaborator call is not cancelled.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.seq++
}

func (c *Controller) publish(event interface{}) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
