package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

type eventData struct {
	Def        *EventDef
	Contract   string
	RuntimePkg string
}

type unionData struct {
	Def        *UnionDef
	RuntimePkg string
}

type filterData struct {
	Def        FilterDef
	RuntimePkg string
}

type eventsData struct {
	Def        *EventsAccessorDef
	RuntimePkg string
}

var fragmentTemplates = template.Must(template.New("fragments").Parse(tmplFragments))

func renderFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragmentTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s fragment: %w", name, err)
	}
	return buf.String(), nil
}

// EventsDeclaration renders the type-level half of the binding: one struct
// per referenced ABI tuple, one data type per event with its signature
// metadata, and, when the contract declares more than one event, the union
// with its ordered decode routine. Contracts without events render nothing.
func (c *Context) EventsDeclaration() (string, error) {
	events := c.SortedEvents()
	var b strings.Builder
	structs, err := ExpandStructs(events, c.structs)
	if err != nil {
		return "", err
	}
	for _, st := range structs {
		frag, err := renderFragment("struct", st)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	for _, ev := range events {
		def, err := c.ExpandEvent(ev)
		if err != nil {
			return "", err
		}
		frag, err := renderFragment("event", eventData{Def: def, Contract: c.contract, RuntimePkg: c.RuntimePkg()})
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	if len(events) > 1 {
		frag, err := renderFragment("union", unionData{Def: c.ExpandEventsEnum(), RuntimePkg: c.RuntimePkg()})
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	return b.String(), nil
}

// EventMethods renders the method-level half of the binding: one unpack
// routine and one filter accessor per event, plus the events() accessor over
// everything the contract declares.
func (c *Context) EventMethods() (string, error) {
	events := c.SortedEvents()
	var b strings.Builder
	for _, ev := range events {
		def, err := c.ExpandEvent(ev)
		if err != nil {
			return "", err
		}
		frag, err := renderFragment("unpack", eventData{Def: def, Contract: c.contract, RuntimePkg: c.RuntimePkg()})
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
		frag, err = renderFragment("filter", filterData{Def: c.ExpandFilter(ev), RuntimePkg: c.RuntimePkg()})
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	if accessor := c.ExpandEventsAccessor(); accessor != nil {
		frag, err := renderFragment("events", eventsData{Def: accessor, RuntimePkg: c.RuntimePkg()})
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	return b.String(), nil
}

const tmplFragments = `
{{- define "struct"}}
// {{.Name}} is a generated binding for an ABI tuple type.
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{end}}

{{- define "event"}}
// {{.Def.TypeName}} represents a {{.Def.EventName}} event raised by the {{.Contract}} contract.
//
// Solidity: event {{.Def.Signature}}{{if .Def.Anonymous}} anonymous{{end}}
{{- if .Def.Tuple}}
//
// Every parameter is unnamed in the ABI, so fields are positional.
{{- end}}
type {{.Def.TypeName}} struct {
{{- range .Def.Params}}
	{{.Name}} {{.Type}}{{if .Indexed}} // indexed{{end}}
{{- end}}
	Raw *types.Log // blockchain metadata
}

// {{.Def.TypeName}}Sig is the canonical signature of the {{.Def.EventName}} event.
const {{.Def.TypeName}}Sig = "{{.Def.Signature}}"

// {{.Def.TypeName}}ID returns the log topic hash of the {{.Def.EventName}} event.
func {{.Def.TypeName}}ID() common.Hash {
	return crypto.Keccak256Hash([]byte({{.Def.TypeName}}Sig))
}

// EventName returns the event's original ABI name.
func (e *{{.Def.TypeName}}) EventName() string { return "{{.Def.EventName}}" }

func (e *{{.Def.TypeName}}) String() string {
	return fmt.Sprintf("{{.Def.EventName}}%+v", *e)
}
{{- if .Def.DeriveDefault}}

// Default{{.Def.TypeName}} returns a {{.Def.TypeName}} with every field set to
// its zero value.
func Default{{.Def.TypeName}}() {{.Def.TypeName}} {
	return {{.Def.TypeName}}{}
}
{{- end}}
{{- range .Def.Derives}}

var _ {{.}} = (*{{$.Def.TypeName}})(nil)
{{- end}}
{{end}}

{{- define "unpack"}}
// Unpack{{.Def.TypeName}} decodes a raw log into a {{.Def.TypeName}}.
{{- if not .Def.Anonymous}} The log's
// first topic is checked against the event's signature hash before any field
// decoding.
{{- end}}
func (_{{.Contract}} *{{.Contract}}) Unpack{{.Def.TypeName}}(log *types.Log) (*{{.Def.TypeName}}, error) {
{{- if and .Def.Positional .Def.Params}}
	vals, err := {{.RuntimePkg}}.UnpackLogValues(_{{.Contract}}.abi, "{{.Def.ABIKey}}", log)
	if err != nil {
		return nil, err
	}
	out := new({{.Def.TypeName}})
{{- range $i, $p := .Def.Params}}
	out.{{$p.Name}} = *abi.ConvertType(vals[{{$i}}], new({{$p.Type}})).(*{{$p.Type}})
{{- end}}
	out.Raw = log
	return out, nil
{{- else}}
	out := new({{.Def.TypeName}})
	if err := {{.RuntimePkg}}.UnpackLog(_{{.Contract}}.abi, out, "{{.Def.ABIKey}}", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
{{- end}}
}
{{end}}

{{- define "filter"}}
// {{.Def.FuncName}} returns a lazy, server-side-filtered query for the
// contract's {{.Def.EventName}} event.
func (_{{.Def.Contract}} *{{.Def.Contract}}) {{.Def.FuncName}}() *{{.RuntimePkg}}.Query[*{{.Def.TypeName}}] {
	return {{.RuntimePkg}}.NewQuery(_{{.Def.Contract}}.filterer, _{{.Def.Contract}}.address, []common.Hash{ {{.Def.TypeName}}ID()}, _{{.Def.Contract}}.Unpack{{.Def.TypeName}})
}
{{end}}

{{- define "union"}}
// {{.Def.Name}} is implemented by every event type generated for the
// {{.Def.Contract}} contract.
type {{.Def.Name}} interface {
	fmt.Stringer
	EventName() string
}

// DecodeLog decodes a raw log into the first event variant whose decoder
// accepts it, trying variants in canonical-signature order. When no variant
// matches it fails with {{.RuntimePkg}}.ErrInvalidLogData.
func (_{{.Def.Contract}} *{{.Def.Contract}}) DecodeLog(log *types.Log) ({{.Def.Name}}, error) {
	return {{.RuntimePkg}}.DecodeFirstMatch(log, []{{.RuntimePkg}}.Decoder[{{.Def.Name}}]{
{{- range .Def.Variants}}
		func(log *types.Log) ({{$.Def.Name}}, error) { return _{{$.Def.Contract}}.Unpack{{.TypeName}}(log) },
{{- end}}
	})
}
{{end}}

{{- define "events"}}
// events returns a query over every event the contract declares{{if .Def.Union}}, decoded
// into the {{.Def.TypeName}} union{{end}}.
func (_{{.Def.Contract}} *{{.Def.Contract}}) events() *{{.RuntimePkg}}.Query[{{if .Def.Union}}{{.Def.TypeName}}{{else}}*{{.Def.TypeName}}{{end}}] {
	return {{.RuntimePkg}}.NewQuery(_{{.Def.Contract}}.filterer, _{{.Def.Contract}}.address, []common.Hash{
{{- range .Def.Types}}
		{{.}}ID(),
{{- end}}
	}, {{if .Def.Union}}_{{.Def.Contract}}.DecodeLog{{else}}_{{.Def.Contract}}.Unpack{{.Def.TypeName}}{{end}})
}
{{end}}`
