package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module wires the configured staff directory.
var Module = fx.Options(
	fx.Provide(newStaffDirectory),
	fx.Provide(func(d *StaffDirectory) repository.StaffRepository { return d }),
)

func newStaffDirectory(cfg *config.Config, logger *slog.Logger) (*StaffDirectory, error) {
	dir, err := ParseStaff(cfg.StaffAccounts)
	if err != nil {
		return nil, err
	}
	logger.Info("staff directory loaded", slog.Int("accounts", dir.Len()))
	return dir, nil
}
