package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// readInput reads EFT text from the file argument, or stdin when absent
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// truncate shortens a string to maxLen with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// printStats renders a stats snapshot in sections
func printStats(s *stats.ShipStats) {
	fmt.Println("Engineering")
	fmt.Printf("  CPU:         %.1f / %.1f tf\n", s.Engineering.CPUUsed, s.Engineering.CPUTotal)
	fmt.Printf("  Powergrid:   %.1f / %.1f MW\n", s.Engineering.PowerUsed, s.Engineering.PowerTotal)
	fmt.Printf("  Calibration: %.0f / %.0f\n", s.Engineering.CalibrationUsed, s.Engineering.Calibration)

	fmt.Println("Capacitor")
	fmt.Printf("  Capacity:    %.1f GJ\n", s.Capacitor.Capacity)
	if s.Capacitor.Stable {
		fmt.Printf("  Stable at:   %.0f%%\n", s.Capacitor.StablePercent)
	} else {
		fmt.Printf("  Lasts:       %.1f s\n", s.Capacitor.LastsSeconds)
	}

	fmt.Println("Offense")
	fmt.Printf("  Total DPS:   %.1f (alpha %.1f)\n", s.Offense.TotalDPS, s.Offense.TotalAlpha)
	if s.Offense.TurretDPS > 0 {
		fmt.Printf("  Turrets:     %.1f DPS, optimal %.0f m + %.0f m falloff\n",
			s.Offense.TurretDPS, s.Offense.TurretOptimal, s.Offense.TurretFalloff)
	}
	if s.Offense.MissileDPS > 0 {
		fmt.Printf("  Missiles:    %.1f DPS, range %.0f m\n", s.Offense.MissileDPS, s.Offense.MissileRange)
	}
	if s.Offense.DroneDPS > 0 {
		fmt.Printf("  Drones:      %.1f DPS\n", s.Offense.DroneDPS)
	}

	fmt.Println("Defense")
	fmt.Printf("  Shield:      %.0f hp (%.0f ehp)\n", s.Shield.HP, s.Shield.EHP)
	fmt.Printf("  Armor:       %.0f hp (%.0f ehp)\n", s.Armor.HP, s.Armor.EHP)
	fmt.Printf("  Hull:        %.0f hp (%.0f ehp)\n", s.Hull.HP, s.Hull.EHP)
	fmt.Printf("  Total EHP:   %.0f\n", s.TotalEHP)

	fmt.Println("Navigation")
	fmt.Printf("  Velocity:    %.1f m/s\n", s.Navigation.MaxVelocity)
	fmt.Printf("  Align time:  %.2f s\n", s.Navigation.AlignTime)

	fmt.Println("Targeting")
	fmt.Printf("  Targets:     %d, range %.0f m\n", s.Targeting.MaxTargets, s.Targeting.MaxTargetRange)
	fmt.Printf("  Sensors:     %s, strength %.1f, scan resolution %.0f mm\n",
		s.Targeting.SensorType, s.Targeting.SensorStrength, s.Targeting.ScanResolution)
}

// printDeltas renders the skill bonus deltas that are non-zero
func printDeltas(d *skills.Deltas) {
	fmt.Println("\nSkill bonus deltas:")
	printDelta("CPU total", d.CPUTotal, "tf")
	printDelta("Powergrid total", d.PowerTotal, "MW")
	printDelta("Capacitor capacity", d.CapCapacity, "GJ")
	printDelta("Shield HP", d.ShieldHP, "hp")
	printDelta("Armor HP", d.ArmorHP, "hp")
	printDelta("Hull HP", d.HullHP, "hp")
	printDelta("Total EHP", d.TotalEHP, "ehp")
	printDelta("Max velocity", d.MaxVelocity, "m/s")
	printDelta("Align time", d.AlignTime, "s")
	printDelta("Targeting range", d.MaxTargetRange, "m")
	printDelta("Scan resolution", d.ScanResolution, "mm")
	if d.MaxTargets != 0 {
		fmt.Printf("  %-20s %+d\n", "Locked targets", d.MaxTargets)
	}
}

func printDelta(label string, value float64, unit string) {
	if value == 0 {
		return
	}
	fmt.Printf("  %-20s %+.1f %s\n", label, value, unit)
}
