package store

// EventKind identifies what changed.
type EventKind string

const (
	EventAdded         EventKind = "added"
	EventEdited        EventKind = "edited"
	EventCompleted     EventKind = "completed"
	EventDeleted       EventKind = "deleted"
	EventCleared       EventKind = "cleared"
	EventSwept         EventKind = "swept"
	EventViewChanged   EventKind = "view_changed"
	EventPersistFailed EventKind = "persist_failed"
)

// Event is delivered to Watch subscribers after each mutation. ID is the
// affected record (zero for collection-wide events), Count the number of
// records touched by sweeps, and Err the persistence error behind an
// EventPersistFailed notification.
type Event struct {
	Kind  EventKind
	ID    int64
	Count int
	Err   error
}

// subscriber channels are buffered; a slow host drops events rather than
// blocking mutations.
const eventBuffer = 16

func (s *jsonFileStore) notify(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Watch implements Store.Watch.
func (s *jsonFileStore) Watch() <-chan Event {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	ch := make(chan Event, eventBuffer)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *jsonFileStore) closeSubscribers() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}
