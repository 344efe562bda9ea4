package types

import (
	"fmt"
	"strings"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
)

// ----------------------------------------------------------------------------
// Event Manager
// ----------------------------------------------------------------------------

// EventManager implements a simple wrapper around a slice of Event objects that
// can be emitted from.
type EventManager struct {
	events Events
}

func NewEventManager() *EventManager {
	return &EventManager{EmptyEvents()}
}

func (em *EventManager) Events() Events { return em.events }

// EmitEvent stores a single Event object.
func (em *EventManager) EmitEvent(event Event) {
	em.events = em.events.AppendEvent(event)
}

// EmitEvents stores a series of Event objects.
func (em *EventManager) EmitEvents(events Events) {
	em.events = em.events.AppendEvents(events)
}

// ABCIEvents returns the ABCI event type representation of the events.
func (em EventManager) ABCIEvents() []abci.Event {
	return em.events.ToABCIEvents()
}

// ----------------------------------------------------------------------------
// Events
// ----------------------------------------------------------------------------

type (
	// Event is a type alias for an ABCI Event
	Event abci.Event

	// Events defines a slice of Event objects
	Events []Event
)

// NewEvent creates a new Event object with a given type and slice of one or more
// attributes.
func NewEvent(ty string, attrs ...cmn.KVPair) Event {
	e := Event{Type: ty}

	for _, attr := range attrs {
		if len(attr.Key) > 0 {
			e.Attributes = append(e.Attributes, attr)
		}
	}

	return e
}

// NewAttribute returns a new key/value Attribute object.
func NewAttribute(k, v string) cmn.KVPair {
	return cmn.KVPair{Key: []byte(k), Value: []byte(v)}
}

// EmptyEvents returns an empty slice of events.
func EmptyEvents() Events {
	return make(Events, 0)
}

// AppendAttributes adds one or more attributes to an Event.
func (e Event) AppendAttributes(attrs ...cmn.KVPair) Event {
	for _, attr := range attrs {
		if len(attr.Key) > 0 {
			e.Attributes = append(e.Attributes, attr)
		}
	}
	return e
}

// AppendEvent adds an Event to a slice of events.
func (e Events) AppendEvent(event Event) Events {
	return append(e, event)
}

// AppendEvents adds a slice of Event objects to an exist slice of Event objects.
func (e Events) AppendEvents(events Events) Events {
	return append(e, events...)
}

// ToABCIEvents converts a slice of Event objects to a slice of abci.Event
// objects.
func (e Events) ToABCIEvents() []abci.Event {
	res := make([]abci.Event, len(e))
	for i, ev := range e {
		res[i] = abci.Event{Type: ev.Type, Attributes: ev.Attributes}
	}

	return res
}

// AttributeValue returns the value of the first attribute named key on the
// first event of type ty.
func (e Events) AttributeValue(ty, key string) (string, bool) {
	for _, ev := range e {
		if ev.Type != ty {
			continue
		}
		for _, attr := range ev.Attributes {
			if string(attr.Key) == key {
				return string(attr.Value), true
			}
		}
	}
	return "", false
}

func (e Events) String() string {
	var sb strings.Builder
	for _, ev := range e {
		sb.WriteString(ev.Type)
		for _, attr := range ev.Attributes {
			sb.WriteString(fmt.Sprintf(" %s=%s", attr.Key, attr.Value))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// Common event types and attribute keys
var (
	EventTypeMessage = "message"

	AttributeKeyAction = "action"
	AttributeKeyModule = "module"
	AttributeKeySender = "sender"
	AttributeKeyAmount = "amount"
)
