package natality

import (
	"fmt"
	"math"
	"strings"

	"github.com/invertedv/natality/frame"
)

// sentinel codes for unknown in the continuous fields
const (
	heightUnknown = 99.0
	bmiUnknown    = 99.9
)

// Clean projects the raw extract onto the analysis columns, renames them,
// coerces types and appends the derived columns:
//
//   - raceImputed: 1 where the raw imputation flag is present, 0 where blank.
//   - height, bmi: floats with the unknown sentinels recoded to NaN.
//   - fRaceAssigned: 1 iff fRace6 < 6, so a single race is recorded for the
//     father.
//
// The input frame is not modified.
func Clean(raw *frame.DF) (*frame.DF, error) {
	sub, e := raw.KeepColumns(RawColumns()...)
	if e != nil {
		return nil, e
	}

	var cols []*frame.Col

	flagCol, _ := sub.Column(RawRaceImputed)
	col, e := frame.NewCol(ColRaceImputed, imputedFlag(flagCol))
	if e != nil {
		return nil, e
	}
	cols = append(cols, col)

	codeNames := map[string]string{
		RawMothersRace: ColMothersRace,
		RawAge:         ColAge,
		RawNativity:    ColNativity,
		RawResidence:   ColResidence,
		RawEducation:   ColEducation,
		RawFathersRace: ColFathersRace,
	}
	for _, rawName := range []string{RawMothersRace, RawAge, RawNativity, RawResidence, RawEducation, RawFathersRace} {
		rawCol, _ := sub.Column(rawName)

		var vals []int
		if vals, e = codes(rawCol); e != nil {
			return nil, e
		}

		if col, e = frame.NewCol(codeNames[rawName], vals); e != nil {
			return nil, e
		}
		cols = append(cols, col)
	}

	for _, c := range []struct {
		raw, cleaned string
		unknown      float64
	}{
		{RawHeight, ColHeight, heightUnknown},
		{RawBMI, ColBMI, bmiUnknown},
	} {
		rawCol, _ := sub.Column(c.raw)
		if col, e = frame.NewCol(c.cleaned, continuous(rawCol, c.unknown)); e != nil {
			return nil, e
		}
		cols = append(cols, col)
	}

	fRace, _ := sub.Column(RawFathersRace)
	fr, e := codes(fRace)
	if e != nil {
		return nil, e
	}

	assigned := make([]int, len(fr))
	for ind := 0; ind < len(fr); ind++ {
		if fr[ind] < RaceMulti {
			assigned[ind] = 1
		}
	}

	if col, e = frame.NewCol(ColFRaceAssigned, assigned); e != nil {
		return nil, e
	}
	cols = append(cols, col)

	return frame.NewDF(cols...)
}

// Validate checks the cleaned frame's invariants: an imputed mother's race is
// never the more-than-one-race code, and fRaceAssigned agrees with fRace6.
func Validate(df *frame.DF) error {
	var (
		imp, race, fr, assigned *frame.Col
		e                       error
	)
	if imp, e = df.Column(ColRaceImputed); e != nil {
		return e
	}
	if race, e = df.Column(ColMothersRace); e != nil {
		return e
	}
	if fr, e = df.Column(ColFathersRace); e != nil {
		return e
	}
	if assigned, e = df.Column(ColFRaceAssigned); e != nil {
		return e
	}

	impV, raceV, frV, asgV := imp.AsInt(), race.AsInt(), fr.AsInt(), assigned.AsInt()
	for ind := 0; ind < df.RowCount(); ind++ {
		if impV[ind] == 1 && raceV[ind] == RaceMulti {
			return fmt.Errorf("row %d: imputed race is the more-than-one-race code", ind)
		}

		want := 0
		if frV[ind] < RaceMulti {
			want = 1
		}
		if asgV[ind] != want {
			return fmt.Errorf("row %d: fRaceAssigned=%d disagrees with fRace6=%d", ind, asgV[ind], frV[ind])
		}
	}

	return nil
}

// imputedFlag recodes the raw imputation flag: any non-blank value is 1.
// Depending on how sparse the flag is, the loader may have typed the raw
// column as string, float or int.
func imputedFlag(col *frame.Col) []int {
	out := make([]int, col.Len())

	switch col.DataType() {
	case frame.DTstring:
		for ind, s := range col.AsString() {
			if strings.TrimSpace(s) != "" {
				out[ind] = 1
			}
		}
	case frame.DTfloat:
		for ind, f := range col.AsFloat() {
			if !math.IsNaN(f) && f != 0 {
				out[ind] = 1
			}
		}
	case frame.DTint:
		for ind, i := range col.AsInt() {
			if i != 0 {
				out[ind] = 1
			}
		}
	}

	return out
}

// codes coerces a categorical column to ints, erroring on missing or
// non-integer values.
func codes(col *frame.Col) ([]int, error) {
	vals := col.AsFloat()
	out := make([]int, len(vals))
	for ind := 0; ind < len(vals); ind++ {
		if math.IsNaN(vals[ind]) || vals[ind] != math.Trunc(vals[ind]) {
			return nil, fmt.Errorf("column %s has a missing or non-integer code at row %d", col.Name(""), ind)
		}

		out[ind] = int(vals[ind])
	}

	return out, nil
}

// continuous coerces a continuous column to floats, recoding the unknown
// sentinel to NaN.
func continuous(col *frame.Col, unknown float64) []float64 {
	vals := col.AsFloat()
	out := make([]float64, len(vals))
	for ind := 0; ind < len(vals); ind++ {
		out[ind] = vals[ind]
		if vals[ind] == unknown {
			out[ind] = math.NaN()
		}
	}

	return out
}
