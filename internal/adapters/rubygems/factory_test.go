package rubygems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/license"
	"go.trai.ch/gembom/internal/adapters/rubygems"
	"go.trai.ch/gembom/internal/core/domain"
)

func TestFactory_NewRegistry(t *testing.T) {
	f := rubygems.NewFactory(license.New(), nil)

	reg, err := f.NewRegistry(domain.DefaultConfig().Registry)
	require.NoError(t, err)
	assert.NotNil(t, reg)
}

func TestFactory_NewRegistryRejectsMalformedURL(t *testing.T) {
	f := rubygems.NewFactory(license.New(), nil)

	cfg := domain.DefaultConfig().Registry
	cfg.URL = "http://[::1"
	_, err := f.NewRegistry(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildRegistryClient.Error())
}
