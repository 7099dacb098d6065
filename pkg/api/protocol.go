package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервис отдает подписчикам
// после каждой команды или тика.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "WAVE_RESULT".
	Type string `json:"type"`

	// Tick текущий тик волны.
	Tick int `json:"tick"`

	// Event событие, вызванное командой (e.g. "TREASURE_REACHED").
	Event string `json:"event,omitempty"`

	// Error текст ошибки, если команда отклонена.
	Error string `json:"error,omitempty"`

	Status *StatusSnapshot  `json:"status,omitempty"`
	Grid   *GridView        `json:"grid,omitempty"`
	Result *WaveResultView  `json:"result,omitempty"`
	Logs   []LogEntry       `json:"logs,omitempty"`
	Data   *json.RawMessage `json:"data,omitempty"`
}

// StatusSnapshot - краткое состояние симуляции
type StatusSnapshot struct {
	Level       int    `json:"level"`
	Ticks       int    `json:"ticks"`
	Score       int    `json:"score"`
	TotalScore  int    `json:"totalScore"`
	AliveHeroes int    `json:"aliveHeroes"`
	Budget      int    `json:"budget"`
	State       string `json:"state"`
}

// GridView содержит карту и героев для отрисовки клиентом.
// Никаких символов и цветов: только семантический тип клетки.
type GridView struct {
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Entry  [2]int     `json:"entry"`
	Exit   [2]int     `json:"exit"`
	Cells  []CellView `json:"cells"`
	Heroes []HeroView `json:"heroes"`
}

// CellView это DTO для непустой клетки карты.
type CellView struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Type        string `json:"type"`
	Damage      int    `json:"damage,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	Armed       bool   `json:"armed,omitempty"`
	Cooldown    int    `json:"cooldown,omitempty"`
}

// HeroView это DTO для героя волны.
type HeroView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	State string `json:"state"`
	Steps int    `json:"steps"`
}

// WaveResultView - итог завершенной волны
type WaveResultView struct {
	HeroesKilled     int  `json:"heroesKilled"`
	HeroesSurvived   int  `json:"heroesSurvived"`
	ConstructionCost int  `json:"constructionCost"`
	Score            int  `json:"score"`
	Turns            int  `json:"turns"`
	TreasureReached  bool `json:"treasureReached"`
}

// LogEntry представляет одну запись в журнале событий.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, WAVE, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех команд игрока.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// PositionPayload используется для действий с клеткой (REMOVE).
type PositionPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacePayload используется для постройки (PLACE).
// Entity - имя типа: wall, trap, dragon, bomb.
type PlacePayload struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Entity      string `json:"entity"`
	Orientation string `json:"orientation,omitempty"`
}

// StepPayload задает количество тиков (STEP). 0 означает один тик.
type StepPayload struct {
	Count int `json:"count,omitempty"`
}

// DungeonPayload используется для EXPORT и IMPORT.
type DungeonPayload struct {
	Name string `json:"name"`
}
