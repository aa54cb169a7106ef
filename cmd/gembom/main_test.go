package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gembom/internal/adapters/telemetry"
	"go.trai.ch/gembom/internal/app"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	app    *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	h.app = app.New(
		h.loader,
		mocks.NewMockFileStore(ctrl),
		mocks.NewMockLockfileParser(ctrl),
		mocks.NewMockRegistryFactory(ctrl),
		mocks.NewMockRepositoryFactory(ctrl),
		mocks.NewMockEncoder(ctrl),
		mocks.NewMockReporter(ctrl),
		telemetry.NewNoOp(),
		h.logger,
	)
	return h
}

func (h *harness) provider(cleaned *bool) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:       h.app,
			Logger:    h.logger,
			Telemetry: telemetry.NewNoOp(),
		}, func() { *cleaned = true }, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)
	stdout := new(bytes.Buffer)
	cleaned := false

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), h.provider(&cleaned))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "gembom version")
	assert.True(t, cleaned)
}

// TestRun_CommandFailure verifies that a failing run is logged and exits with 1.
func TestRun_CommandFailure(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("").Return(domain.Config{}, domain.ErrConfigParse)
	h.logger.EXPECT().Error(gomock.Any())
	cleaned := false

	exitCode := run(context.Background(), []string{"generate"}, new(bytes.Buffer), new(bytes.Buffer), h.provider(&cleaned))

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_ProviderFailure verifies that initialization errors are printed to stderr.
func TestRun_ProviderFailure(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph cycle")
	}

	exitCode := run(context.Background(), []string{"generate"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph cycle\n", stderr.String())
}
