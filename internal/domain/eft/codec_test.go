package eft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronlabs/evefit/internal/domain/eft"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

const rifterDoc = `[Rifter, Kite Fit]
Gyrostabilizer II
Gyrostabilizer II
[Empty Low slot]

5MN Microwarpdrive I
Warp Disruptor I
Stasis Webifier I

200mm AutoCannon II, EMP S
200mm AutoCannon II, EMP S
200mm AutoCannon II, EMP S
[Empty High slot]

Small Projectile Burst Aerator I
[Empty Rig slot]
[Empty Rig slot]


Hobgoblin II x3

EMP S x1000
Nanite Repair Paste x25
`

func TestParse_FullDocument(t *testing.T) {
	// Act
	parsed, err := eft.Parse(rifterDoc)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Rifter", parsed.ShipName)
	assert.Equal(t, "Kite Fit", parsed.FitName)

	// Empty-slot markers are dropped, not parsed as modules
	require.Len(t, parsed.Low, 2)
	assert.Equal(t, "Gyrostabilizer II", parsed.Low[0].Name)

	require.Len(t, parsed.Mid, 3)
	assert.Equal(t, "Warp Disruptor I", parsed.Mid[1].Name)

	require.Len(t, parsed.High, 3)
	assert.Equal(t, "200mm AutoCannon II", parsed.High[0].Name)
	assert.Equal(t, "EMP S", parsed.High[0].Charge)

	require.Len(t, parsed.Rig, 1)

	// Double blank before drones holds the subsystem position empty
	assert.Empty(t, parsed.Subsystem)
	require.Len(t, parsed.Drones, 1)
	assert.Equal(t, 3, parsed.Drones[0].Quantity)

	require.Len(t, parsed.Cargo, 2)
	assert.Equal(t, "EMP S", parsed.Cargo[0].Name)
	assert.Equal(t, 1000, parsed.Cargo[0].Quantity)
}

func TestParse_LineVariants(t *testing.T) {
	cases := []struct {
		name string
		line string
		want eft.Line
	}{
		{"bare name", "Gyrostabilizer II", eft.Line{Name: "Gyrostabilizer II"}},
		{"name with charge", "200mm AutoCannon II, EMP S", eft.Line{Name: "200mm AutoCannon II", Charge: "EMP S"}},
		{"name with quantity", "Hobgoblin II x5", eft.Line{Name: "Hobgoblin II", Quantity: 5}},
		{"charge and quantity", "Rocket Launcher II, Scourge Rocket x2", eft.Line{Name: "Rocket Launcher II", Charge: "Scourge Rocket", Quantity: 2}},
		{"x not a suffix", "400mm Plates x-Type", eft.Line{Name: "400mm Plates x-Type"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := eft.Parse("[Rifter, t]\n" + tc.line + "\n")
			require.NoError(t, err)
			require.Len(t, parsed.Low, 1)
			assert.Equal(t, tc.want, parsed.Low[0])
		})
	}
}

func TestParse_LeadingBlankLinesBeforeHeader(t *testing.T) {
	parsed, err := eft.Parse("\n\n  \n[Rifter, Fit]\nGyrostabilizer II\n")

	require.NoError(t, err)
	assert.Equal(t, "Rifter", parsed.ShipName)
	require.Len(t, parsed.Low, 1)
}

func TestParse_RejectsMalformedHeader(t *testing.T) {
	cases := []string{
		"",
		"Rifter, Fit",
		"[Rifter]",
		"[Rifter, ]",
		"[, Fit]",
		"[Rifter, Fit] trailing",
	}

	for _, doc := range cases {
		_, err := eft.Parse(doc)

		var formatErr *shared.FormatError
		assert.ErrorAs(t, err, &formatErr, "doc %q", doc)
	}
}

func TestParse_MissingTrailingSectionsAreEmpty(t *testing.T) {
	parsed, err := eft.Parse("[Rifter, Fit]\nGyrostabilizer II\n\n5MN Microwarpdrive I\n")

	require.NoError(t, err)
	assert.Len(t, parsed.Low, 1)
	assert.Len(t, parsed.Mid, 1)
	assert.Empty(t, parsed.High)
	assert.Empty(t, parsed.Drones)
	assert.Empty(t, parsed.Cargo)
}

func TestLooksLikeEFT(t *testing.T) {
	assert.True(t, eft.LooksLikeEFT("[Rifter, Kite Fit]\n"))
	assert.True(t, eft.LooksLikeEFT("\n  [Rifter, Kite Fit]\nGyrostabilizer II"))
	assert.False(t, eft.LooksLikeEFT("Rifter, Kite Fit"))
	assert.False(t, eft.LooksLikeEFT("[Rifter]"))
	assert.False(t, eft.LooksLikeEFT(""))
}

func TestSerialize_PadsRacksAndMarksSections(t *testing.T) {
	// Act
	text := eft.Serialize(eft.SerializeOptions{
		ShipName:  "Rifter",
		FitName:   "Kite Fit",
		Low:       []eft.Line{{Name: "Gyrostabilizer II"}},
		Mid:       []eft.Line{{Name: "5MN Microwarpdrive I"}},
		High:      []eft.Line{{Name: "200mm AutoCannon II", Charge: "EMP S"}},
		Drones:    []eft.Line{{Name: "Hobgoblin II", Quantity: 3}},
		Cargo:     []eft.Line{{Name: "EMP S", Quantity: 1000}},
		LowSlots:  3,
		MidSlots:  3,
		HighSlots: 4,
		RigSlots:  3,
	})

	// Assert
	assert.Contains(t, text, "[Rifter, Kite Fit]\n")
	assert.Contains(t, text, "Gyrostabilizer II\n[Empty Low slot]\n[Empty Low slot]\n")
	assert.Contains(t, text, "200mm AutoCannon II, EMP S\n")
	assert.Contains(t, text, "Hobgoblin II x3\n")
	assert.Contains(t, text, "EMP S x1000\n")

	// Quantity 1 has no suffix
	single := eft.Serialize(eft.SerializeOptions{
		ShipName: "Rifter", FitName: "f",
		Cargo: []eft.Line{{Name: "EMP S", Quantity: 1}},
	})
	assert.Contains(t, single, "EMP S\n")
	assert.NotContains(t, single, "EMP S x1")
}

func TestSerializeParse_RoundTrip(t *testing.T) {
	// Arrange
	opts := eft.SerializeOptions{
		ShipName:  "Rifter",
		FitName:   "Kite Fit",
		Low:       []eft.Line{{Name: "Gyrostabilizer II"}, {Name: "Gyrostabilizer II"}},
		Mid:       []eft.Line{{Name: "5MN Microwarpdrive I"}, {Name: "Warp Disruptor I"}},
		High:      []eft.Line{{Name: "200mm AutoCannon II", Charge: "EMP S"}},
		Rig:       []eft.Line{{Name: "Small Projectile Burst Aerator I"}},
		Drones:    []eft.Line{{Name: "Hobgoblin II", Quantity: 3}},
		Cargo:     []eft.Line{{Name: "EMP S", Quantity: 1000}},
		LowSlots:  3,
		MidSlots:  3,
		HighSlots: 4,
		RigSlots:  3,
	}

	// Act
	parsed, err := eft.Parse(eft.Serialize(opts))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, opts.ShipName, parsed.ShipName)
	assert.Equal(t, opts.FitName, parsed.FitName)
	assert.Equal(t, opts.Low, parsed.Low)
	assert.Equal(t, opts.Mid, parsed.Mid)
	assert.Equal(t, opts.High, parsed.High)
	assert.Equal(t, opts.Rig, parsed.Rig)
	assert.Empty(t, parsed.Subsystem)
	assert.Equal(t, opts.Drones, parsed.Drones)
	assert.Equal(t, opts.Cargo, parsed.Cargo)
}

func TestUniqueNames(t *testing.T) {
	parsed, err := eft.Parse(rifterDoc)
	require.NoError(t, err)

	names := parsed.UniqueNames()

	assert.Contains(t, names, "Rifter")
	assert.Contains(t, names, "200mm AutoCannon II")
	assert.Contains(t, names, "EMP S") // charge and cargo, once
	assert.Contains(t, names, "Hobgoblin II")

	seen := make(map[string]int)
	for _, n := range names {
		seen[n]++
	}
	for n, count := range seen {
		assert.Equal(t, 1, count, "duplicate name %s", n)
	}
}
