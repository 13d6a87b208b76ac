package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"capres.dev/pkg/capres/internal/domain"
	m "capres.dev/pkg/capres/internal/model"
)

func TestScanCmd_DefaultPrefixes(t *testing.T) {
	useTempWorkdir(t)
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Scan(mock.Anything, domain.ScanArgs{Prefixes: []string{"OpenEXR", "OpenExr", "Imath"}}).
		Return([]m.ModuleDescriptor{{Name: "OpenEXR", File: "/tp/OpenEXR.Build.cs"}}, nil)

	_, err := executeCmd(t, newScanCmd(), "scan")
	require.NoError(t, err)
}

func TestScanCmd_ExplicitPrefixes(t *testing.T) {
	useTempWorkdir(t)
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Scan(mock.Anything, domain.ScanArgs{Prefixes: []string{"zlib"}}).Return(nil, nil)

	_, err := executeCmd(t, newScanCmd(), "scan", "zlib")
	require.NoError(t, err)
}
