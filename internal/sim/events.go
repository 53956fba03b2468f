package sim

type EventType int

const (
	EventScoreChanged EventType = iota
	EventLevelChanged
	EventSizeChanged
	EventCreatureEaten
	EventStateChanged
	EventGameOver
	EventAchievementUnlocked
)

// Event is what the core tells the presentation layer. Value carries the
// new score, level or state; Size the player's size; Text an achievement
// title.
type Event struct {
	Type  EventType
	X, Y  float64
	Value int
	Size  float64
	Role  Role
	Text  string
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

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventScoreChanged; t <= EventAchievementUnlocked; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
