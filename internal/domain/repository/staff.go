package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// StaffRepository looks up console staff accounts.
type StaffRepository interface {
	GetByLogin(ctx context.Context, login string) (*model.Staff, error)
	GetByID(ctx context.Context, id int64) (*model.Staff, error)
}
