package server

import (
	"context"
	"errors"
	"log/slog"

	"relaxan/app/config"
	"relaxan/app/service/dialog"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

// QueryResponder produces the assistant's reply for one user turn.
type QueryResponder interface {
	Reply(ctx context.Context, userID int64, text string) (string, error)
}

type Server struct {
	cfg    *config.Config
	dialog QueryResponder
	app    *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	return newServer(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[*dialog.Service](di),
	), nil
}

func newServer(cfg *config.Config, responder QueryResponder) *Server {
	s := &Server{
		cfg:    cfg,
		dialog: responder,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/query", s.handleQuery)

	s.app = app

	return s
}

func (s *Server) handleQuery(c *fiber.Ctx) error {
	userText := c.Query("user_text")
	if userText == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_text is required")
	}

	userID := int64(c.QueryInt("user_id"))

	message, err := s.dialog.Reply(c.UserContext(), userID, userText)
	if err != nil {
		// Failures degrade to a user-facing string, never to a 5xx.
		slog.Error("Failed to handle query",
			"user_id", userID,
			"error", err,
		)

		return c.JSON(fiber.Map{"message": dialog.MsgNotRecognized})
	}

	return c.JSON(fiber.Map{"message": message})
}

func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server started", "listen", s.cfg.Server.Listen)
		return s.app.Listen(s.cfg.Server.Listen)
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
