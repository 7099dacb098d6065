package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RemiF1908/pcd/internal/domain"
)

var ErrBadJournal = errors.New("invalid wave journal")

func (s *JournalService) Load(path string) (*Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*Journal, error) {
	// 1. Читаем заголовок целиком
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: invalid magic", ErrBadJournal)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadJournal, header.Version, Version1)
	}
	if header.FrameCount < 0 {
		return nil, fmt.Errorf("%w: negative frame count", ErrBadJournal)
	}

	j := &Journal{
		LevelID:   int(header.LevelID),
		Timestamp: header.Timestamp,
		Rows:      int(header.Rows),
		Cols:      int(header.Cols),
		Frames:    make([]Frame, header.FrameCount),
	}

	// 2. Читаем кадры
	for i := range j.Frames {
		var fh FrameHeader
		if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		fr := Frame{Tick: int(fh.Tick), Heroes: make([]HeroFrame, fh.HeroCount)}
		for k := range fr.Heroes {
			var rec HeroRecord
			if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
				return nil, fmt.Errorf("frame %d hero %d: %w", i, k, err)
			}
			fr.Heroes[k] = HeroFrame{
				Pos:   domain.C(int(rec.Row), int(rec.Col)),
				HP:    int(rec.HP),
				State: domain.HeroState(rec.State),
			}
		}
		j.Frames[i] = fr
	}
	return j, nil
}
