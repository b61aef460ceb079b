// Package lifecycle holds the active/inactive state machine shared by
// employees, addresses and settings, and the removal policy of each kind.
package lifecycle

import (
	"fmt"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

type State string

const (
	Active   State = "active"
	Inactive State = "inactive"
)

type Transition string

const (
	Deactivate Transition = "deactivate"
	Restore    Transition = "restore"
)

// Target is the state a transition always lands in, whatever the current state.
func (t Transition) Target() State {
	if t == Restore {
		return Active
	}
	return Inactive
}

// Apply returns the active flag after t. The result depends only on t, so
// applying a transition twice is a no-op.
func (t Transition) Apply(_ bool) bool {
	return t.Target() == Active
}

type Kind string

const (
	KindEmployee Kind = "employee"
	KindAddress  Kind = "address"
	KindSetting  Kind = "setting"
	KindUser     Kind = "user"
)

type Removal int

const (
	SoftDelete Removal = iota
	HardDelete
)

type Policy struct {
	Kind    Kind
	Removal Removal
}

var policies = map[Kind]Policy{
	KindEmployee: {Kind: KindEmployee, Removal: SoftDelete},
	KindAddress:  {Kind: KindAddress, Removal: SoftDelete},
	KindSetting:  {Kind: KindSetting, Removal: SoftDelete},
	KindUser:     {Kind: KindUser, Removal: HardDelete},
}

// For returns the policy of kind. Unknown kinds get the soft-delete policy.
func For(kind Kind) Policy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return Policy{Kind: kind, Removal: SoftDelete}
}

func (p Policy) HasLifecycle() bool {
	return p.Removal == SoftDelete
}

// Allow refuses state transitions on kinds that are removed for good.
func (p Policy) Allow(t Transition) error {
	if t != Deactivate && t != Restore {
		return apperror.New(
			apperror.CodeInvalidState,
			fmt.Sprintf("unknown transition %q", t),
			http.StatusBadRequest,
		)
	}
	if !p.HasLifecycle() {
		return apperror.New(
			apperror.CodeInvalidState,
			fmt.Sprintf("%s records cannot be %sd, they are deleted permanently", p.Kind, t),
			http.StatusBadRequest,
		)
	}
	return nil
}

// AllowHardDelete refuses permanent removal on soft-delete kinds.
func (p Policy) AllowHardDelete() error {
	if p.HasLifecycle() {
		return apperror.New(
			apperror.CodeInvalidState,
			fmt.Sprintf("%s records cannot be deleted permanently, deactivate them instead", p.Kind),
			http.StatusBadRequest,
		)
	}
	return nil
}

// Partition splits items into active and inactive, keeping relative order.
func Partition[T any](items []T, isActive func(T) bool) (active, inactive []T) {
	active = make([]T, 0, len(items))
	inactive = make([]T, 0)
	for _, item := range items {
		if isActive(item) {
			active = append(active, item)
		} else {
			inactive = append(inactive, item)
		}
	}
	return active, inactive
}
