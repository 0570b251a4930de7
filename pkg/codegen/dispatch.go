package codegen

// UnionDef is the tagged union over all of a contract's events. It is only
// emitted when the contract declares more than one event.
type UnionDef struct {
	Name     string
	Contract string
	Variants []UnionVariant
}

// UnionVariant pairs a variant's generated type with the event it decodes.
type UnionVariant struct {
	TypeName  string
	EventName string
	Signature string
}

// ExpandEventsEnum builds the union definition. Variants are ordered by
// canonical signature and the emitted decode routine tries them in that
// order, keeping the first success. With pathologically overlapping ABIs two
// variants may decode the same log; the earliest signature wins. That
// tie-break is an assumption, not a uniqueness guarantee.
func (c *Context) ExpandEventsEnum() *UnionDef {
	events := c.SortedEvents()
	variants := make([]UnionVariant, len(events))
	for i, ev := range events {
		variants[i] = UnionVariant{
			TypeName:  EventTypeName(ev.RawName, c.alias(ev)),
			EventName: ev.RawName,
			Signature: ev.Sig,
		}
	}
	return &UnionDef{
		Name:     c.contract + "Events",
		Contract: c.contract,
		Variants: variants,
	}
}
