// Package pattern reads and writes the seed-list shape consumed at the engine
// boundary and keeps a registry of well-known starting patterns.
package pattern

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"sparselife/internal/core"
)

// Cell is one live position in a serialized pattern.
type Cell struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Pattern is a finite list of live cells, conventionally stored as
// {"cells":[{"x":..,"y":..}, ...]}.
type Pattern struct {
	Name  string `json:"name,omitempty"`
	Cells []Cell `json:"cells"`
}

// Seeder is the mutation surface a pattern needs from the engine.
type Seeder interface {
	SetCellAlive(x, y int32)
}

// Load reads a pattern file. I/O and decode failures are returned to the
// caller; nothing reaches the engine on error.
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("read pattern %s: %w", path, err)
	}
	var p Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("parse pattern %s: %w", path, err)
	}
	return p, nil
}

// Save writes the pattern as indented JSON.
func Save(path string, p Pattern) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pattern: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write pattern %s: %w", path, err)
	}
	return nil
}

// Apply seeds every cell of the pattern. Out-of-range cells follow the
// engine's own policy: ignored on bounded fields, wrapped on a torus.
func Apply(s Seeder, p Pattern) {
	for _, c := range p.Cells {
		s.SetCellAlive(c.X, c.Y)
	}
}

// Positions converts the serialized cells to engine positions.
func (p Pattern) Positions() []core.Position {
	out := make([]core.Position, 0, len(p.Cells))
	for _, c := range p.Cells {
		out = append(out, core.Position{X: c.X, Y: c.Y})
	}
	return out
}

// FromPositions builds a pattern from live cells, sorted row-major so saved
// files diff cleanly.
func FromPositions(name string, cells []core.Position) Pattern {
	p := Pattern{Name: name, Cells: make([]Cell, 0, len(cells))}
	for _, pos := range cells {
		p.Cells = append(p.Cells, Cell{X: pos.X, Y: pos.Y})
	}
	sort.Slice(p.Cells, func(i, j int) bool {
		if p.Cells[i].Y != p.Cells[j].Y {
			return p.Cells[i].Y < p.Cells[j].Y
		}
		return p.Cells[i].X < p.Cells[j].X
	})
	return p
}

var builtins = map[string][]Cell{}

// Register adds a named builtin pattern. Empty names or cell lists are ignored.
func Register(name string, cells []Cell) {
	if name == "" || len(cells) == 0 {
		return
	}
	builtins[name] = cells
}

// Builtin returns a registered pattern by name. The returned cell list is a
// copy; callers may modify it freely.
func Builtin(name string) (Pattern, bool) {
	cells, ok := builtins[name]
	if !ok {
		return Pattern{}, false
	}
	return Pattern{Name: name, Cells: append([]Cell(nil), cells...)}, true
}

// Builtins lists the registered pattern names in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
