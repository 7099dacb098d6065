package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlace
	ActionRemove
	ActionLaunch
	ActionStop
	ActionStep
	ActionReset
	ActionResetGrid
	ActionNextLevel
	ActionExport
	ActionImport
	ActionList
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":       ActionInit,
	"PLACE":      ActionPlace,
	"REMOVE":     ActionRemove,
	"LAUNCH":     ActionLaunch,
	"STOP":       ActionStop,
	"STEP":       ActionStep,
	"RESET":      ActionReset,
	"RESET_GRID": ActionResetGrid,
	"NEXT_LEVEL": ActionNextLevel,
	"EXPORT":     ActionExport,
	"IMPORT":     ActionImport,
	"LIST":       ActionList,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{}

func init() {
	for s, a := range actionStringToCmd {
		actionCmdToString[a] = s
	}
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
