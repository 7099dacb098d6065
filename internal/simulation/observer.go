package simulation

// DamageObserver накапливает урон, нанесенный героям за волну.
// Записывается реально потерянное HP (урон, обрезанный по остатку).
type DamageObserver struct {
	total int
	last  int
	hits  int
}

func NewDamageObserver() *DamageObserver { return &DamageObserver{} }

// Notify регистрирует одно применение урона (0, если урона не было)
func (o *DamageObserver) Notify(damage int) {
	o.last = damage
	o.total += damage
	o.hits++
}

func (o *DamageObserver) Total() int         { return o.total }
func (o *DamageObserver) Last() int          { return o.last }
func (o *DamageObserver) Notifications() int { return o.hits }

func (o *DamageObserver) Reset() {
	*o = DamageObserver{}
}
