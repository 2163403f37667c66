package service

import "github.com/nroberts/museums-of-london/backend/internal/domain"

// Authorizer gates admin operations. The only implementation today compares
// a static PIN; the interface exists so a real credential system can be
// substituted without touching AdminService.
type Authorizer interface {
	// Verify returns nil when the supplied pin is acceptable,
	// domain.ErrUnauthorized otherwise.
	Verify(pin string) error
}

// StaticPINAuthorizer accepts exactly one configured PIN, compared by plain
// string equality. Not a security boundary: no hashing, rotation, rate
// limiting, or lockout — a placeholder for a real mechanism.
type StaticPINAuthorizer struct {
	pin string
}

// NewStaticPINAuthorizer constructs an Authorizer around the given PIN.
func NewStaticPINAuthorizer(pin string) *StaticPINAuthorizer {
	return &StaticPINAuthorizer{pin: pin}
}

// Verify compares pin against the configured secret.
func (a *StaticPINAuthorizer) Verify(pin string) error {
	if pin != a.pin {
		return domain.ErrUnauthorized
	}
	return nil
}
