package simulation

import (
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFields_LevelID(t *testing.T) {
	hook := test.NewLocal(logger.Log)
	t.Cleanup(hook.Reset)

	s := newSim(t, simSetup{
		rows: 1, cols: 3,
		entry: domain.C(0, 0), exit: domain.C(0, 2),
		budget: 10,
		heroes: []heroSpec{{hp: 10, strategy: "shortest"}},
	})
	require.True(t, s.Launch())

	var launched *logrus.Entry
	for _, e := range hook.AllEntries() {
		assert.NotContains(t, e.Data, "level", "logrus reserves the level key: %q", e.Message)
		if e.Message == "Wave launched" {
			launched = e
		}
	}
	require.NotNil(t, launched)
	assert.Equal(t, s.Level().ID, launched.Data["level_id"])
	assert.Equal(t, "simulation", launched.Data["component"])
}
