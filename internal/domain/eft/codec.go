// Package eft implements the plain-text EFT fitting interchange format:
// a bracketed "[Ship, Fit Name]" header followed by blank-line-delimited
// module sections in low/mid/high/rig/subsystem/drones/cargo order.
package eft

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// Line is one parsed module line: a name, an optional loaded charge and an
// optional quantity (quantities appear on drones and cargo).
type Line struct {
	Name     string `json:"name"`
	Charge   string `json:"charge,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// ParsedFitting is the structured intermediate representation of an EFT
// document. Sections are positional; a section that was absent from the
// text parses as an empty list, indistinguishable from present-but-empty
// (an accepted ambiguity of the format).
type ParsedFitting struct {
	ShipName string `json:"ship_name"`
	FitName  string `json:"fit_name"`

	Low       []Line `json:"low"`
	Mid       []Line `json:"mid"`
	High      []Line `json:"high"`
	Rig       []Line `json:"rig"`
	Subsystem []Line `json:"subsystem"`
	Drones    []Line `json:"drones"`
	Cargo     []Line `json:"cargo"`
}

var (
	headerPattern    = regexp.MustCompile(`^\[([^,\[\]]+),([^\[\]]+)\]$`)
	emptySlotPattern = regexp.MustCompile(`(?i)^\[empty\s+.*slot\]$`)
	quantityPattern  = regexp.MustCompile(`\s+x(\d+)$`)
)

// LooksLikeEFT reports whether the text's first line matches the EFT header
// bracket pattern. A cheap pre-check, not a full parse.
func LooksLikeEFT(text string) bool {
	trimmed := strings.TrimSpace(text)
	first, _, _ := strings.Cut(trimmed, "\n")
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(first))
	return m != nil && strings.TrimSpace(m[1]) != "" && strings.TrimSpace(m[2]) != ""
}

// Parse decodes an EFT document. It fails with a FormatError only when the
// header line is malformed; body anomalies degrade to omissions.
func Parse(text string) (*ParsedFitting, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	// Skip leading blank lines before the header.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) {
		return nil, shared.NewFormatError("empty document")
	}

	header := headerPattern.FindStringSubmatch(strings.TrimSpace(lines[start]))
	if header == nil {
		return nil, shared.NewFormatError(fmt.Sprintf("invalid EFT header: %q", strings.TrimSpace(lines[start])))
	}
	shipName := strings.TrimSpace(header[1])
	fitName := strings.TrimSpace(header[2])
	if shipName == "" || fitName == "" {
		return nil, shared.NewFormatError("EFT header requires both ship and fit name")
	}

	// Cut the body into sections: every blank line terminates the current
	// section, and empty sections are preserved so positional mapping
	// survives the serializer's padding quirks. Empty-slot placeholder
	// markers are dropped without starting a new section.
	var sections [][]Line
	current := []Line{}
	for _, raw := range lines[start+1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			sections = append(sections, current)
			current = []Line{}
			continue
		}
		if emptySlotPattern.MatchString(line) {
			continue
		}
		current = append(current, parseLine(line))
	}
	sections = append(sections, current)

	section := func(i int) []Line {
		if i < len(sections) {
			return sections[i]
		}
		return nil
	}

	return &ParsedFitting{
		ShipName:  shipName,
		FitName:   fitName,
		Low:       section(0),
		Mid:       section(1),
		High:      section(2),
		Rig:       section(3),
		Subsystem: section(4),
		Drones:    section(5),
		Cargo:     section(6),
	}, nil
}

// parseLine decodes "Name", "Name, Charge", "Name x5" and "Name, Charge x5".
func parseLine(line string) Line {
	quantity := 0
	if m := quantityPattern.FindStringSubmatch(line); m != nil {
		quantity, _ = strconv.Atoi(m[1])
		line = strings.TrimSpace(quantityPattern.ReplaceAllString(line, ""))
	}

	name := line
	charge := ""
	if before, after, found := strings.Cut(line, ","); found {
		name = strings.TrimSpace(before)
		charge = strings.TrimSpace(after)
	}

	return Line{Name: name, Charge: charge, Quantity: quantity}
}

// SerializeOptions describes a fitting for EFT encoding. SlotCounts pads
// the low/mid/high/rig sections with empty-slot markers up to the rack
// size; subsystems are never padded.
type SerializeOptions struct {
	ShipName string
	FitName  string

	Low       []Line
	Mid       []Line
	High      []Line
	Rig       []Line
	Subsystem []Line
	Drones    []Line
	Cargo     []Line

	LowSlots  int
	MidSlots  int
	HighSlots int
	RigSlots  int
}

// Serialize encodes a fitting as EFT text. Two blank lines always precede
// the drones section; when the subsystem section is omitted (no subsystems
// fitted) the extra blank doubles as its positional placeholder.
func Serialize(opts SerializeOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s, %s]\n", opts.ShipName, opts.FitName)

	writePadded := func(entries []Line, slots int, marker string) {
		for _, e := range entries {
			b.WriteString(formatLine(e))
			b.WriteByte('\n')
		}
		for i := len(entries); i < slots; i++ {
			b.WriteString(marker)
			b.WriteByte('\n')
		}
	}

	writePadded(opts.Low, opts.LowSlots, "[Empty Low slot]")
	b.WriteByte('\n')
	writePadded(opts.Mid, opts.MidSlots, "[Empty Med slot]")
	b.WriteByte('\n')
	writePadded(opts.High, opts.HighSlots, "[Empty High slot]")
	b.WriteByte('\n')
	writePadded(opts.Rig, opts.RigSlots, "[Empty Rig slot]")

	if len(opts.Subsystem) > 0 {
		b.WriteByte('\n')
		writePadded(opts.Subsystem, 0, "")
	}

	b.WriteString("\n\n")
	writePadded(opts.Drones, 0, "")
	b.WriteByte('\n')
	writePadded(opts.Cargo, 0, "")

	return b.String()
}

func formatLine(e Line) string {
	s := e.Name
	if e.Charge != "" {
		s += ", " + e.Charge
	}
	if e.Quantity > 1 {
		s += fmt.Sprintf(" x%d", e.Quantity)
	}
	return s
}

// UniqueNames collects the ship name plus every module and charge name in
// the parsed fitting, for bulk name-to-id resolution before the parse is
// acted upon.
func (p *ParsedFitting) UniqueNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		if n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	add(p.ShipName)
	for _, section := range [][]Line{p.Low, p.Mid, p.High, p.Rig, p.Subsystem, p.Drones, p.Cargo} {
		for _, line := range section {
			add(line.Name)
			add(line.Charge)
		}
	}
	return names
}
