package codegen

import "github.com/ethereum/go-ethereum/accounts/abi"

// FilterDef describes one generated event accessor.
type FilterDef struct {
	FuncName  string
	TypeName  string
	EventName string
	Contract  string
}

// ExpandFilter builds the accessor definition for one event. The accessor is
// always typed to the event's own generated type, never the union.
func (c *Context) ExpandFilter(event abi.Event) FilterDef {
	alias := c.alias(event)
	return FilterDef{
		FuncName:  EventFunctionName(event.RawName, alias),
		TypeName:  EventTypeName(event.RawName, alias),
		EventName: event.RawName,
		Contract:  c.contract,
	}
}

// EventsAccessorDef describes the catch-all events() accessor.
type EventsAccessorDef struct {
	Contract string
	TypeName string // the sole event's type, or the union name
	Union    bool
	// Types lists every event type name in canonical-signature order, used
	// to assemble the server-side topic filter.
	Types []string
}

// ExpandEventsAccessor decides the events() accessor shape: typed to the
// sole event's own type when exactly one event exists, to the union when
// several do, and absent entirely when the contract declares no events.
func (c *Context) ExpandEventsAccessor() *EventsAccessorDef {
	events := c.SortedEvents()
	if len(events) == 0 {
		return nil
	}
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = EventTypeName(ev.RawName, c.alias(ev))
	}
	if len(events) == 1 {
		return &EventsAccessorDef{
			Contract: c.contract,
			TypeName: types[0],
			Types:    types,
		}
	}
	return &EventsAccessorDef{
		Contract: c.contract,
		TypeName: c.contract + "Events",
		Union:    true,
		Types:    types,
	}
}
