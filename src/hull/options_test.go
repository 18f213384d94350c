package hull

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithLoggerIgnoresNil(t *testing.T) {
	qh, err := New([]Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
	}, WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, qh.logger)
}

func TestWithLoggerAndDebugCompose(t *testing.T) {
	logger := zap.NewExample()
	qh, err := New([]Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
	}, WithLogger(logger), WithDebug(true))
	require.NoError(t, err)
	require.True(t, qh.debug)
	require.Equal(t, logger, qh.logger)
	require.NoError(t, qh.BuildHull())
}
