// internal/event/event.go
package event

// Event несёт тип события и произвольные данные для подписчиков.
type Event struct {
	Type EventType
	Data interface{} // Полезная нагрузка, если нужна
}

// EventType задаёт тип события.
type EventType string

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписывать обычную функцию как слушателя.
type ListenerFunc func(event Event)

// OnEvent вызывает саму функцию.
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher синхронно рассылает события подписчикам в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создает пустой диспетчер.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает слушателя на события указанного типа.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает подписку слушателя с события.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch отправляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
