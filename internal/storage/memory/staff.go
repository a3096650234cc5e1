package memory

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// StaffDirectory is a read-only set of staff accounts loaded at start-up.
type StaffDirectory struct {
	byLogin map[string]*model.Staff
	byID    map[int64]*model.Staff
}

// ParseStaff reads "login:bcrypt-hash" pairs separated by ';'.
// Ids are assigned in declaration order starting at 1.
func ParseStaff(accounts string) (*StaffDirectory, error) {
	dir := &StaffDirectory{
		byLogin: make(map[string]*model.Staff),
		byID:    make(map[int64]*model.Staff),
	}

	for _, entry := range strings.Split(accounts, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		login, hash, ok := strings.Cut(entry, ":")
		login = strings.TrimSpace(login)
		hash = strings.TrimSpace(hash)
		if !ok || login == "" || hash == "" {
			return nil, fmt.Errorf("staff entry %q: expected login:hash", entry)
		}
		if _, exists := dir.byLogin[login]; exists {
			return nil, fmt.Errorf("staff login %q declared twice", login)
		}
		if err := pkgAuth.ValidateHash(hash); err != nil {
			return nil, fmt.Errorf("staff login %q: %w", login, err)
		}

		staff := &model.Staff{ID: int64(len(dir.byID) + 1), Login: login, PasswordHash: hash}
		dir.byLogin[login] = staff
		dir.byID[staff.ID] = staff
	}

	if len(dir.byID) == 0 {
		return nil, fmt.Errorf("no staff accounts configured")
	}
	return dir, nil
}

// GetByLogin returns the account registered under login.
func (d *StaffDirectory) GetByLogin(_ context.Context, login string) (*model.Staff, error) {
	staff, ok := d.byLogin[login]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *staff
	return &copied, nil
}

// GetByID returns the account with id.
func (d *StaffDirectory) GetByID(_ context.Context, id int64) (*model.Staff, error) {
	staff, ok := d.byID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *staff
	return &copied, nil
}

// Len returns the number of configured accounts.
func (d *StaffDirectory) Len() int {
	return len(d.byID)
}
