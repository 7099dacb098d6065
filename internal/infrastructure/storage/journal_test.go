package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RemiF1908/pcd/internal/domain"
)

func TestJournal_SaveLoad(t *testing.T) {
	svc, err := NewJournalService(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)

	h1 := domain.NewHero("a", "Hero 1", 100, "shortest")
	h2 := domain.NewHero("b", "Hero 2", 80, "safest")
	j := NewJournal(4, 5, 6)

	h1.Awake()
	h1.MoveTo(domain.C(0, 1))
	j.CaptureFrame(1, []*domain.Hero{h1, h2})

	h1.TakeDamage(100)
	h2.Awake()
	h2.MoveTo(domain.C(1, 0))
	j.CaptureFrame(2, []*domain.Hero{h1, h2})

	path, err := svc.Save(j)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, JournalExt))

	back, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, j.LevelID, back.LevelID)
	assert.Equal(t, j.Timestamp, back.Timestamp)
	assert.Equal(t, 5, back.Rows)
	assert.Equal(t, 6, back.Cols)
	require.Len(t, back.Frames, 2)

	assert.Equal(t, 2, back.Frames[1].Tick)
	assert.Equal(t, HeroFrame{Pos: domain.C(0, 1), HP: 0, State: domain.HeroDead}, back.Frames[1].Heroes[0])
	assert.Equal(t, HeroFrame{Pos: domain.C(1, 0), HP: 80, State: domain.HeroAlive}, back.Frames[1].Heroes[1])
	assert.Equal(t, domain.HeroDormant, back.Frames[0].Heroes[1].State)
}

func TestJournal_RejectsForeignFiles(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"wrong magic", append([]byte("CDRP"), make([]byte, 28)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readBinary(bytes.NewReader(tt.data))
			assert.Error(t, err)
		})
	}

	t.Run("wrong version", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeBinary(&buf, NewJournal(1, 1, 1)))
		raw := buf.Bytes()
		raw[4] = 9
		_, err := readBinary(bytes.NewReader(raw))
		assert.ErrorIs(t, err, ErrBadJournal)
	})

	t.Run("truncated frame", func(t *testing.T) {
		var buf bytes.Buffer
		j := NewJournal(1, 2, 2)
		j.CaptureFrame(1, []*domain.Hero{domain.NewHero("x", "x", 10, "shortest")})
		require.NoError(t, writeBinary(&buf, j))
		raw := buf.Bytes()
		_, err := readBinary(bytes.NewReader(raw[:len(raw)-3]))
		assert.Error(t, err)
	})

	_, err := (&JournalService{}).Load(filepath.Join(t.TempDir(), "missing"+JournalExt))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
