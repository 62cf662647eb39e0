package refresh

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"relaxan/app/config"

	"github.com/samber/do"
)

// Service periodically reruns the external catalog parsing script. The
// script rewrites the catalog file for the next process start; the running
// process keeps its in-memory catalog.
type Service struct {
	cfg *config.Config
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg: do.MustInvoke[*config.Config](di),
	}, nil
}

func (s *Service) Run(ctx context.Context) {
	if len(s.cfg.Catalog.RefreshCommand) == 0 {
		slog.Info("Catalog refresh loop disabled")
		return
	}

	interval := time.Duration(s.cfg.Catalog.RefreshIntervalSeconds) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce executes the refresh command and logs the outcome. Failures never
// stop the loop.
func (s *Service) runOnce(ctx context.Context) {
	command := s.cfg.Catalog.RefreshCommand

	start := time.Now()

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	if err := cmd.Run(); err != nil {
		slog.Error("Catalog refresh failed",
			"command", command,
			"error", err,
		)
		return
	}

	slog.Info("Catalog refresh finished",
		"command", command,
		"duration", time.Since(start),
	)
}
