package game

// EventType classifies a discrete simulation event. Consumers (audio,
// haptics, score UI) subscribe to the types they care about; the core
// makes no assumption about what they do with them.
type EventType int

const (
	EventContact   EventType = iota // vehicle hit a static obstacle hard
	EventCrash                      // two pursuers collided
	EventCrushed                    // player crushed a pursuer
	EventDestroyed                  // player vehicle eliminated, session over
	EventScore                      // points awarded
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // generic payload (impact speed, points, ...)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
