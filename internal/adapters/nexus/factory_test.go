package nexus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/nexus"
)

func TestFactory_NewRepository(t *testing.T) {
	repo, err := nexus.NewFactory(nil).NewRepository(repositoryConfig("https://mynexus.com"))
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
