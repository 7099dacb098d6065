package domain

// EventType - событие волны. Только исходящее: в ответах сервиса и логах.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventWaveLaunched
	EventWaveStopped
	EventTreasureReached
	EventAllHeroesDead
	EventLevelChanged
	EventCampaignComplete
)

// Маппинг для ответов и логов Domain -> String
var eventNames = map[EventType]string{
	EventWaveLaunched:     "WAVE_LAUNCHED",
	EventWaveStopped:      "WAVE_STOPPED",
	EventTreasureReached:  "TREASURE_REACHED",
	EventAllHeroesDead:    "ALL_HEROES_DEAD",
	EventLevelChanged:     "LEVEL_CHANGED",
	EventCampaignComplete: "CAMPAIGN_COMPLETE",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventNames[a]; ok {
		return val
	}
	return "UNKNOWN"
}
