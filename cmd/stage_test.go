package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "capres.dev/pkg/capres/internal/model"
)

func TestStageCmd_StagesConfiguredPlatforms(t *testing.T) {
	useTempWorkdir(t)
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Stage(mock.Anything, m.PlatformWin64).Return(m.StagingReport{}, nil).Once()

	_, err := executeCmd(t, newStageCmd(), "stage")
	require.NoError(t, err)
}

func TestStageCmd_InvalidJob(t *testing.T) {
	useTempWorkdir(t)
	mockWorkflow := useMockWorkflow(t)

	boom := errors.New("invalid staging job")
	mockWorkflow.EXPECT().Stage(mock.Anything, m.PlatformWin64).Return(m.StagingReport{}, boom)

	_, err := executeCmd(t, newStageCmd(), "stage", "--platform", "Win64")
	require.ErrorIs(t, err, boom)
}
