package domain

// HeroState - жизненный цикл героя в волне
type HeroState uint8

const (
	HeroDormant HeroState = iota // ждет своей очереди у входа
	HeroAlive
	HeroGoal // дошел до сокровища
	HeroDead
)

func (s HeroState) String() string {
	switch s {
	case HeroDormant:
		return "dormant"
	case HeroAlive:
		return "alive"
	case HeroGoal:
		return "goal"
	case HeroDead:
		return "dead"
	}
	return "unknown"
}

// Hero - участник волны, идущий от входа к выходу
type Hero struct {
	ID        string
	Name      string
	MaxHP     int
	HP        int
	Pos       Coord
	State     HeroState
	Steps     int
	Path      []Coord
	Strategy  string
	WakeDelay int
}

func NewHero(id, name string, hp int, strategy string) *Hero {
	if hp <= 0 {
		hp = DefaultHeroHP
	}
	return &Hero{
		ID:       id,
		Name:     name,
		MaxHP:    hp,
		HP:       hp,
		State:    HeroDormant,
		Strategy: strategy,
	}
}

// Awake переводит спящего героя в активное состояние
func (h *Hero) Awake() {
	if h.State == HeroDormant {
		h.State = HeroAlive
	}
}

func (h *Hero) IsAlive() bool   { return h.State == HeroAlive }
func (h *Hero) IsDead() bool    { return h.State == HeroDead }
func (h *Hero) IsDormant() bool { return h.State == HeroDormant }

// TakeDamage снимает HP (не ниже нуля) и возвращает реально потерянное
func (h *Hero) TakeDamage(amount int) int {
	if amount <= 0 || h.State == HeroDead {
		return 0
	}
	lost := amount
	if lost > h.HP {
		lost = h.HP
	}
	h.HP -= lost
	if h.HP == 0 {
		h.State = HeroDead
	}
	return lost
}

// NextMove возвращает следующую клетку пути
func (h *Hero) NextMove() (Coord, bool) {
	next := h.Steps + 1
	if next >= len(h.Path) {
		return Coord{}, false
	}
	return h.Path[next], true
}

func (h *Hero) MoveTo(c Coord) {
	h.Pos = c
	h.Steps++
}

func (h *Hero) ReachGoal() {
	if h.State == HeroAlive {
		h.State = HeroGoal
	}
}

// Restore возвращает героя в исходное состояние у входа
func (h *Hero) Restore(entry Coord) {
	h.HP = h.MaxHP
	h.Pos = entry
	h.State = HeroDormant
	h.Steps = 0
}

func (h *Hero) Clone() *Hero {
	c := *h
	c.Path = append([]Coord(nil), h.Path...)
	return &c
}
