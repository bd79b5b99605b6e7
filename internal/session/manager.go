package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"famcash/internal/domain/family"
	"famcash/internal/domain/user"
	"famcash/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	userKey   = "@FamCash:usuario"
	familyKey = "@FamCash:familia"
	themeKey  = "themeMode"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// persistedUser is the session snapshot written under userKey. The user's
// password hash is excluded by its json tag.
type persistedUser struct {
	SessionID  string    `json:"session_id"`
	User       user.User `json:"user"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Manager holds the current user/family and mirrors it to device-local
// storage so a later launch can restore the session without
// re-authenticating. It is constructed explicitly and passed by
// reference; there is no ambient global.
type Manager struct {
	log        logger.Logger
	repo       Repository
	store      Store
	bcryptCost int

	mu      sync.Mutex
	current *persistedUser
	family  *family.Family
}

func NewManager(log logger.Logger, repo Repository, store Store, bcryptCost int) *Manager {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Manager{
		log:        log,
		repo:       repo,
		store:      store,
		bcryptCost: bcryptCost,
	}
}

// Login resolves the identifier by email first; when it contains no "@"
// and the email lookup missed, it retries by phone.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*user.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	found, err := m.repo.GetUserByEmail(ctx, identifier)
	if errors.Is(err, user.ErrUserNotFound) && !strings.Contains(identifier, "@") {
		found, err = m.repo.GetUserByPhone(ctx, identifier)
	}
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := m.establish(ctx, found); err != nil {
		return nil, err
	}

	m.log.Info("session: logged in", "user_id", found.ID)
	return found, nil
}

type SignupInput struct {
	Name       string
	Email      string
	Phone      *string
	Password   string
	FamilyName string // optional hint; derived from Name when empty
}

// Signup creates the user and joins or creates the family named by the
// hint (or by the last token of the full name) in a single transaction,
// then logs the new user in.
func (m *Manager) Signup(ctx context.Context, input SignupInput) (*user.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	familyName := strings.TrimSpace(input.FamilyName)
	if familyName == "" {
		familyName = deriveFamilyName(name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), m.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := user.User{
		Name:         name,
		Email:        email,
		Phone:        normalizePhone(input.Phone),
		PasswordHash: string(hash),
	}

	err = m.repo.Transaction(ctx, func(tx Repository) error {
		fam, err := tx.GetFamilyByName(ctx, familyName)
		if errors.Is(err, family.ErrFamilyNotFound) {
			fam = &family.Family{Name: familyName}
			if err := tx.CreateFamily(ctx, fam); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		newUser.FamilyID = &fam.ID
		return tx.CreateUser(ctx, &newUser)
	})
	if err != nil {
		return nil, err
	}

	if err := m.establish(ctx, &newUser); err != nil {
		return nil, err
	}

	m.log.Info("session: signed up", "user_id", newUser.ID, "family", familyName)
	return &newUser, nil
}

// Logout clears the in-memory session and the persisted copy.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.current = nil
	m.family = nil
	m.mu.Unlock()

	if err := m.store.Delete(userKey); err != nil {
		return err
	}
	if err := m.store.Delete(familyKey); err != nil {
		return err
	}

	m.log.Info("session: logged out")
	return nil
}

// Restore loads a persisted session at startup. Absent keys mean logged
// out; that is not an error.
func (m *Manager) Restore() (*user.User, error) {
	var snapshot persistedUser
	ok, err := m.store.Load(userKey, &snapshot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var fam family.Family
	hasFamily, err := m.store.Load(familyKey, &fam)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.current = &snapshot
	if hasFamily {
		m.family = &fam
	}
	m.mu.Unlock()

	m.log.Info("session: restored", "user_id", snapshot.User.ID)
	return &snapshot.User, nil
}

// CurrentUser returns the logged-in user, or ErrNotLoggedIn.
func (m *Manager) CurrentUser() (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNotLoggedIn
	}
	u := m.current.User
	return &u, nil
}

// CurrentFamily returns the logged-in user's family, or nil when the
// user has none.
func (m *Manager) CurrentFamily() (*family.Family, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNotLoggedIn
	}
	if m.family == nil {
		return nil, nil
	}
	f := *m.family
	return &f, nil
}

// ThemeMode reads the persisted theme preference, defaulting to system.
func (m *Manager) ThemeMode() string {
	var mode string
	ok, err := m.store.Load(themeKey, &mode)
	if err != nil || !ok {
		return ThemeSystem
	}
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		return mode
	default:
		return ThemeSystem
	}
}

func (m *Manager) SetThemeMode(mode string) error {
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m.store.Save(themeKey, mode)
	default:
		return ErrInvalidThemeMode
	}
}

// establish makes u the current user and persists the snapshot.
func (m *Manager) establish(ctx context.Context, u *user.User) error {
	snapshot := persistedUser{
		SessionID:  uuid.NewString(),
		User:       *u,
		LoggedInAt: time.Now().UTC(),
	}

	var fam *family.Family
	if u.FamilyID != nil {
		loaded, err := m.repo.GetFamilyByID(ctx, *u.FamilyID)
		if err != nil && !errors.Is(err, family.ErrFamilyNotFound) {
			return err
		}
		fam = loaded
	}

	if err := m.store.Save(userKey, snapshot); err != nil {
		return err
	}
	if fam != nil {
		if err := m.store.Save(familyKey, fam); err != nil {
			return err
		}
	} else if err := m.store.Delete(familyKey); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &snapshot
	m.family = fam
	m.mu.Unlock()
	return nil
}

// deriveFamilyName takes the last whitespace-separated token of the full
// name, the same heuristic the signup screen used.
func deriveFamilyName(fullName string) string {
	parts := strings.Fields(fullName)
	return parts[len(parts)-1]
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
