// Package roster keeps the user list behind the user management page.
package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Role is one of the platform roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

var roleLabels = map[Role]string{
	RoleStudent: "دانشجو",
	RoleTeacher: "استاد",
	RoleAdmin:   "ادمین",
}

// Label returns the Persian name of the role, or the raw value when unknown.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// ParseRole accepts either the role value or its Persian label.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if s == string(r) || s == roleLabels[r] {
			return r, true
		}
	}
	return "", false
}

// Next returns the role after r in Roles, wrapping around.
func (r Role) Next() Role {
	for i, x := range Roles {
		if x == r {
			return Roles[(i+1)%len(Roles)]
		}
	}
	return Roles[0]
}

// User is one row of the roster. Identity is ID.
type User struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  Role   `json:"role" yaml:"role" validate:"oneof=student teacher admin"`
}

// Update carries the fields of an inline row edit. Nil fields are left as they are.
type Update struct {
	Name  *string
	Email *string
	Role  *Role
}

// Option configures a Roster.
type Option func(*Roster)

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(r *Roster) { r.newID = fn }
}

// WithTracer overrides the tracer used for mutation spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Roster) { r.tracer = t }
}

// Roster is an in-memory, ordered user list.
type Roster struct {
	users  []User
	newID  func() string
	tracer trace.Tracer
}

// New returns a roster seeded with users.
func New(users []User, opts ...Option) *Roster {
	r := &Roster{
		users:  append([]User(nil), users...),
		newID:  uuid.NewString,
		tracer: otel.Tracer("hamgaman/roster"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Users returns a copy of the list in display order.
func (r *Roster) Users() []User {
	return append([]User(nil), r.users...)
}

// Len returns the number of users.
func (r *Roster) Len() int {
	return len(r.users)
}

// Get returns the user with the given id.
func (r *Roster) Get(id string) (User, bool) {
	if i := r.index(id); i >= 0 {
		return r.users[i], true
	}
	return User{}, false
}

// Add prepends a blank student and returns it.
func (r *Roster) Add(ctx context.Context) User {
	_, span := r.tracer.Start(ctx, "roster.add")
	defer span.End()

	u := User{ID: r.newID(), Role: RoleStudent}
	r.users = append([]User{u}, r.users...)
	span.SetAttributes(attribute.String("user.id", u.ID))
	return u
}

// Save merges upd into the user with the given id. Unknown ids are a no-op.
// An invalid role rejects the whole update.
func (r *Roster) Save(ctx context.Context, id string, upd Update) error {
	_, span := r.tracer.Start(ctx, "roster.save", trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	i := r.index(id)
	if i < 0 {
		span.SetAttributes(attribute.Bool("user.found", false))
		return nil
	}
	next := r.users[i]
	if upd.Name != nil {
		next.Name = *upd.Name
	}
	if upd.Email != nil {
		next.Email = *upd.Email
	}
	if upd.Role != nil {
		next.Role = *upd.Role
	}
	if err := Validate(next); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid user")
		return fmt.Errorf("save user %s: %w", id, err)
	}
	r.users[i] = next
	return nil
}

// Delete removes the user with the given id and reports whether it existed.
func (r *Roster) Delete(ctx context.Context, id string) bool {
	_, span := r.tracer.Start(ctx, "roster.delete", trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	i := r.index(id)
	if i < 0 {
		return false
	}
	r.users = append(r.users[:i:i], r.users[i+1:]...)
	return true
}

func (r *Roster) index(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
