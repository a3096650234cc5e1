package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// StaffUseCase authenticates console staff and manages their session tokens.
type StaffUseCase struct {
	staff  repository.StaffRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewStaffUseCase constructs StaffUseCase.
func NewStaffUseCase(staff repository.StaffRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *StaffUseCase {
	return &StaffUseCase{staff: staff, hasher: hasher, tokens: strategy}
}

// Authenticate validates credentials and issues a session token.
func (u *StaffUseCase) Authenticate(ctx context.Context, login, password string) (*model.Staff, string, pkgAuth.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
	}

	staff, err := u.staff.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
		}
		return nil, "", pkgAuth.Session{}, err
	}

	if err := u.hasher.Compare(staff.PasswordHash, password); err != nil {
		return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
	}

	token, session, err := u.tokens.IssueToken(staff.ID)
	if err != nil {
		return nil, "", pkgAuth.Session{}, err
	}

	return staff, token, session, nil
}

// ParseToken validates a session token.
func (u *StaffUseCase) ParseToken(token string) (pkgAuth.Session, error) {
	if token == "" {
		return pkgAuth.Session{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a staff account by identifier.
func (u *StaffUseCase) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	return u.staff.GetByID(ctx, id)
}
