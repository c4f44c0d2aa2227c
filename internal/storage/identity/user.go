// Handles user accounts and password authentication.

package identity

import (
	"errors"
	"iter"
	"strings"
	"time"

	"github.com/maruel/ksid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chembot/admin/internal/jsonldb"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user with a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	errUserIDRequired   = errors.New("user id is required")
	errEmailRequired    = errors.New("email is required")
	errPasswordTooShort = errors.New("password must be at least 8 characters")
)

// User is one admin account.
type User struct {
	ID           ksid.ID   `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"password_hash"`
	Theme        string    `json:"theme,omitempty" jsonschema:"description=UI theme preference"`
	Language     string    `json:"language,omitempty"`
	Created      time.Time `json:"created"`
	LastLogin    time.Time `json:"last_login,omitzero"`
}

func (u *User) Clone() *User {
	c := *u
	return &c
}

func (u *User) GetID() string { return u.ID.String() }

func (u *User) Validate() error {
	if u.ID.IsZero() {
		return errUserIDRequired
	}
	if u.Email == "" {
		return errEmailRequired
	}
	return nil
}

// UserService handles user accounts.
type UserService struct {
	table   *jsonldb.Table[*User]
	byEmail *jsonldb.UniqueIndex[string, *User]
}

// NewUserService creates a new user service.
func NewUserService(tablePath string) (*UserService, error) {
	table, err := jsonldb.NewTable[*User](tablePath)
	if err != nil {
		return nil, err
	}
	byEmail := jsonldb.NewUniqueIndex(table, func(u *User) string {
		return strings.ToLower(u.Email)
	})
	return &UserService{table: table, byEmail: byEmail}, nil
}

// Create creates a new user with a bcrypt-hashed password.
func (s *UserService) Create(email, password, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errEmailRequired
	}
	if len(password) < 8 {
		return nil, errPasswordTooShort
	}
	if s.byEmail.Get(email) != nil {
		return nil, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:           ksid.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Created:      time.Now(),
	}
	if err := s.table.Append(user); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// Get returns the user with the given ID.
func (s *UserService) Get(id ksid.ID) (*User, error) {
	user, ok := s.table.Lookup(id.String())
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail returns the user with the given email.
func (s *UserService) GetByEmail(email string) (*User, error) {
	user := s.byEmail.Get(strings.ToLower(strings.TrimSpace(email)))
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Authenticate verifies an email and password pair.
func (s *UserService) Authenticate(email, password string) (*User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Modify applies fn to the user with the given ID.
func (s *UserService) Modify(id ksid.ID, fn func(*User) error) (*User, error) {
	user, err := s.table.Modify(id.String(), fn)
	if err != nil {
		if errors.Is(err, jsonldb.ErrRowNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// All returns an iterator over all users.
func (s *UserService) All() iter.Seq[*User] {
	return s.table.All()
}

// Len returns the number of users.
func (s *UserService) Len() int {
	return s.table.Len()
}

// EnsureAdmin creates the default admin account if no users exist.
func (s *UserService) EnsureAdmin(email, password string) error {
	if s.table.Len() > 0 {
		return nil
	}
	_, err := s.Create(email, password, "Admin")
	return err
}
