package api

import (
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// MaxStepsPerCommand ограничивает STEP, чтобы одна команда не крутила волну бесконечно
const MaxStepsPerCommand = 1000

func (p PositionPayload) Validate() error {
	if p.Row < 0 || p.Col < 0 {
		return errors.New("coordinates must be non-negative")
	}
	return nil
}

func (p PlacePayload) Validate() error {
	if p.Row < 0 || p.Col < 0 {
		return errors.New("coordinates must be non-negative")
	}
	if strings.TrimSpace(p.Entity) == "" {
		return errors.New("entity is required")
	}
	return nil
}

func (p StepPayload) Validate() error {
	if p.Count < 0 || p.Count > MaxStepsPerCommand {
		return errors.New("step count out of range")
	}
	return nil
}

func (p DungeonPayload) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return errors.New("name must not contain path separators")
	}
	return nil
}
