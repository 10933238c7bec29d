package core

// Event is a discrete outcome of one simulation tick.
// The platform forwards events to audio and logging; games never wait on them.
type Event int

const (
	EventRegularEaten Event = iota + 1
	EventBonusEaten
	EventPoisonEaten
	EventPoisonExpired
	EventGameOver
	EventRestarted
	EventQuit
)

// String returns a stable name, used as a log field value.
func (e Event) String() string {
	switch e {
	case EventRegularEaten:
		return "regular_eaten"
	case EventBonusEaten:
		return "bonus_eaten"
	case EventPoisonEaten:
		return "poison_eaten"
	case EventPoisonExpired:
		return "poison_expired"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// HasEvent reports whether e is in events.
func HasEvent(events []Event, e Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
