package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boundsmith.dev/pkg/boundsmith/internal/domain"
	domainmocks "boundsmith.dev/pkg/boundsmith/internal/domain/mocks"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

func TestViewCmd_UsesConfiguredReportsDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRoot(newViewCmd)

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".boundsmith-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RejectsPositionalArgs(t *testing.T) {
	cmd := newTestRoot(newViewCmd)

	cmd.SetArgs([]string{"view", "extra"})

	assert.Error(t, cmd.Execute())
}
