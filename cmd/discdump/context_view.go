package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"discdump/internal/execctx"
	"discdump/internal/input"
)

type contextView struct {
	Program    string            `json:"program"`
	Command    string            `json:"command,omitempty"`
	Modes      []string          `json:"modes,omitempty"`
	Input      string            `json:"input,omitempty"`
	Output     string            `json:"output,omitempty"`
	Speed      *int              `json:"speed,omitempty"`
	MediaType  string            `json:"media_type,omitempty"`
	Dumping    bool              `json:"dumping"`
	Flags      map[string]string `json:"flags"`
	Parameters string            `json:"parameters"`
}

func newContextView(ctx execctx.Context) contextView {
	view := contextView{
		Program:    string(ctx.Program()),
		Command:    ctx.BaseCommand(),
		Modes:      ctx.Modes(),
		Input:      ctx.InputPath(),
		Output:     ctx.OutputPath(),
		Dumping:    ctx.IsDumpingCommand(),
		Flags:      make(map[string]string),
		Parameters: ctx.Generate(),
	}
	if speed, ok := ctx.Speed(); ok {
		view.Speed = &speed
	}
	if t, ok := ctx.MediaType(); ok {
		view.MediaType = string(t)
	}
	for name, v := range ctx.Values() {
		view.Flags[name] = renderValue(v)
	}
	return view
}

func renderValue(v input.Value) string {
	if v == nil {
		return ""
	}
	if arr, ok := v.(input.Int32Array); ok {
		slots := make([]string, len(arr))
		for i, slot := range arr {
			if slot == nil {
				slots[i] = "-"
				continue
			}
			slots[i] = strconv.FormatInt(int64(*slot), 10)
		}
		return strings.Join(slots, " ")
	}
	return v.String()
}

func printContext(out io.Writer, ctx execctx.Context) {
	view := newContextView(ctx)
	fmt.Fprintf(out, "Program:    %s\n", ctx.Program().DisplayName())
	if view.Command != "" {
		fmt.Fprintf(out, "Command:    %s\n", view.Command)
	}
	if len(view.Modes) > 0 {
		fmt.Fprintf(out, "Modes:      %s\n", strings.Join(view.Modes, " "))
	}
	if view.Input != "" {
		fmt.Fprintf(out, "Input:      %s\n", view.Input)
	}
	if view.Output != "" {
		fmt.Fprintf(out, "Output:     %s\n", view.Output)
	}
	if view.Speed != nil {
		fmt.Fprintf(out, "Speed:      %d\n", *view.Speed)
	}
	if t, ok := ctx.MediaType(); ok {
		fmt.Fprintf(out, "Media type: %s\n", t.LongName())
	}
	fmt.Fprintf(out, "Dumping:    %s\n", yesNo(view.Dumping))
	fmt.Fprintf(out, "Parameters: %s\n", view.Parameters)

	if len(view.Flags) == 0 {
		return
	}
	rows := make([][]string, 0, len(view.Flags))
	for _, name := range slices.Sorted(maps.Keys(view.Flags)) {
		value := view.Flags[name]
		if value == "" {
			value = "(set)"
		}
		rows = append(rows, []string{name, value})
	}
	fmt.Fprintln(out, renderTable(columns("Flag", "Value"), rows))
}
