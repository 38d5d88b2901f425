// internal/event/event.go
package event

import "pixel-war/internal/component"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все игровые события
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. Слушатель должен быть сравнимым.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit — короткая форма Dispatch.
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}

// EnemyData — данные о враге в событиях попадания и уничтожения.
type EnemyData struct {
	Kind component.Kind
	X, Y float64
}

// PowerUpData — собранный бонус.
type PowerUpData struct {
	Shield bool
}

// PlayerHitData — игрок потерял жизнь.
type PlayerHitData struct {
	LivesLeft int
}

// LevelData — новый уровень.
type LevelData struct {
	Level int
}

// ScoreData — итоговый счёт.
type ScoreData struct {
	Score int
}
