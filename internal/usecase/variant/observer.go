package variant

import "github.com/marcos-nsantos/asset-store/internal/domain/valueobject"

type EventType string

const (
	EventGenerated EventType = "generated"
	EventUploaded  EventType = "uploaded"
	EventDeleted   EventType = "deleted"
)

type Event struct {
	Type     EventType
	Key      string
	Category valueobject.Category
}

type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// NopObserver discards events.
var NopObserver Observer = ObserverFunc(func(Event) {})
