package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `DDWJ` // 4 байта
	Version1    uint32 = 1
)

const JournalExt = ".ddwj"

// JournalFileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type JournalFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Timestamp  int64   // 8 байт
	LevelID    int32   // 4 байта
	Rows       int32   // 4 байта
	Cols       int32   // 4 байта
	FrameCount int32   // 4 байта
}

// FrameHeader - заголовок каждого тика.
type FrameHeader struct {
	Tick      int32  // 4
	HeroCount uint16 // 2
}

// HeroRecord - состояние одного героя на тике.
type HeroRecord struct {
	Row   int16 // 2
	Col   int16 // 2
	HP    int32 // 4
	State uint8 // 1
}

// HeroFrame - состояние героя в кадре
type HeroFrame struct {
	Pos   domain.Coord
	HP    int
	State domain.HeroState
}

// Frame - снимок героев после тика
type Frame struct {
	Tick   int
	Heroes []HeroFrame
}

// Journal - полная запись волны
type Journal struct {
	LevelID   int
	Timestamp int64
	Rows      int
	Cols      int
	Frames    []Frame
}

func NewJournal(levelID, rows, cols int) *Journal {
	return &Journal{
		LevelID:   levelID,
		Timestamp: time.Now().UnixMilli(),
		Rows:      rows,
		Cols:      cols,
	}
}

// CaptureFrame добавляет кадр с текущим состоянием героев
func (j *Journal) CaptureFrame(tick int, heroes []*domain.Hero) {
	f := Frame{Tick: tick, Heroes: make([]HeroFrame, len(heroes))}
	for i, h := range heroes {
		f.Heroes[i] = HeroFrame{Pos: h.Pos, HP: h.HP, State: h.State}
	}
	j.Frames = append(j.Frames, f)
}

type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) (*JournalService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &JournalService{SaveDir: dir}, nil
}

// Save пишет журнал в файл и возвращает путь
func (s *JournalService) Save(j *Journal) (string, error) {
	filename := fmt.Sprintf("wave_lvl%d_%d%s", j.LevelID, j.Timestamp, JournalExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, j); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "journal",
		"path":      path,
		"frames":    len(j.Frames),
	}).Info("Wave journal saved")
	return path, nil
}

func writeBinary(w io.Writer, j *Journal) error {
	// 1. ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := JournalFileHeader{
		Version:    Version1,
		Timestamp:  j.Timestamp,
		LevelID:    int32(j.LevelID),
		Rows:       int32(j.Rows),
		Cols:       int32(j.Cols),
		FrameCount: int32(len(j.Frames)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Кадры
	for _, fr := range j.Frames {
		if len(fr.Heroes) > math.MaxUint16 {
			return fmt.Errorf("too many heroes in frame: %d", len(fr.Heroes))
		}
		fh := FrameHeader{Tick: int32(fr.Tick), HeroCount: uint16(len(fr.Heroes))}
		if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
			return err
		}
		for _, h := range fr.Heroes {
			rec := HeroRecord{
				Row:   int16(h.Pos.Row),
				Col:   int16(h.Pos.Col),
				HP:    int32(h.HP),
				State: uint8(h.State),
			}
			if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
				return err
			}
		}
	}
	return nil
}
