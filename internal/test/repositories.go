package test

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// StaffRepositoryStub serves staff members from a fixed slice.
type StaffRepositoryStub struct {
	Staff        []model.Staff
	GetByLoginFn func(context.Context, string) (*model.Staff, error)
}

// GetByLogin finds a staff member by login.
func (s StaffRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Staff, error) {
	if s.GetByLoginFn != nil {
		return s.GetByLoginFn(ctx, login)
	}
	for _, member := range s.Staff {
		if member.Login == login {
			m := member
			return &m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID finds a staff member by identifier.
func (s StaffRepositoryStub) GetByID(_ context.Context, id int64) (*model.Staff, error) {
	for _, member := range s.Staff {
		if member.ID == id {
			m := member
			return &m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

var _ repository.StaffRepository = StaffRepositoryStub{}
