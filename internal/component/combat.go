package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// BossAttack — счётчик тиков до следующего выстрела босса
type BossAttack struct {
	Counter  int
	Interval int
}
