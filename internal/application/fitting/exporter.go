package fitting

import (
	"github.com/acheronlabs/evefit/internal/domain/eft"
	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
)

// ToEFT serializes a fitting to EFT text. Rack sections are padded to the
// fitting's rack sizes; drones and cargo are grouped by type with an xN
// quantity suffix.
func ToEFT(fit *domain.Fitting) string {
	return eft.Serialize(eft.SerializeOptions{
		ShipName:  fit.ShipName,
		FitName:   fit.Name,
		Low:       rackLines(fit.Low),
		Mid:       rackLines(fit.Mid),
		High:      rackLines(fit.High),
		Rig:       rackLines(fit.Rig),
		Subsystem: rackLines(fit.Subsystem),
		Drones:    groupedLines(fit.Drones),
		Cargo:     groupedLines(fit.Cargo),
		LowSlots:  len(fit.Low),
		MidSlots:  len(fit.Mid),
		HighSlots: len(fit.High),
		RigSlots:  len(fit.Rig),
	})
}

func rackLines(rack []*domain.FittedModule) []eft.Line {
	var lines []eft.Line
	for _, m := range rack {
		if m == nil {
			continue
		}
		line := eft.Line{Name: m.Name}
		if m.Charge != nil {
			line.Charge = m.Charge.Name
		}
		lines = append(lines, line)
	}
	return lines
}

// groupedLines collapses a drone/cargo list into one line per type in
// first-seen order.
func groupedLines(list []*domain.FittedModule) []eft.Line {
	counts := make(map[int]int)
	var order []*domain.FittedModule
	for _, m := range list {
		if counts[m.TypeID] == 0 {
			order = append(order, m)
		}
		counts[m.TypeID]++
	}

	var lines []eft.Line
	for _, m := range order {
		lines = append(lines, eft.Line{Name: m.Name, Quantity: counts[m.TypeID]})
	}
	return lines
}
