package refresh

import (
	"context"
	"testing"
	"time"

	"relaxan/app/config"

	"github.com/stretchr/testify/assert"
)

func TestRunDisabledWithoutCommand(t *testing.T) {
	svc := &Service{cfg: &config.Config{}}

	done := make(chan struct{})
	go func() {
		svc.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for an empty refresh command")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	svc := &Service{cfg: &config.Config{
		Catalog: config.Catalog{
			RefreshCommand:         []string{"/bin/sh", "-c", "exit 0"},
			RefreshIntervalSeconds: 3600,
		},
	}}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}

func TestRunOnceSurvivesFailure(t *testing.T) {
	svc := &Service{cfg: &config.Config{
		Catalog: config.Catalog{
			RefreshCommand: []string{"/bin/sh", "-c", "exit 1"},
		},
	}}

	assert.NotPanics(t, func() {
		svc.runOnce(context.Background())
	})
}

func TestRunOnceMissingBinary(t *testing.T) {
	svc := &Service{cfg: &config.Config{
		Catalog: config.Catalog{
			RefreshCommand: []string{"/nonexistent/pars.py"},
		},
	}}

	assert.NotPanics(t, func() {
		svc.runOnce(context.Background())
	})
}
