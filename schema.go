package natality

// Raw column names in the natality public-use extract.
const (
	RawRaceImputed = "MRACEIMP"    // blank unless the race was imputed
	RawMothersRace = "MRACE6"      // mother's race recode, 1-6
	RawAge         = "MAGER"       // mother's single-year age
	RawHeight      = "M_Ht_In"     // mother's height in inches, 99 = unknown
	RawBMI         = "BMI"         // body mass index, 99.9 = unknown
	RawNativity    = "MBSTATE_REC" // mother's birthplace: 1 = US, 2 = elsewhere, 3 = unknown
	RawResidence   = "RESTATUS"    // residence status, 1-4
	RawEducation   = "MEDUC"       // mother's education, 1-8, 9 = unknown
	RawFathersRace = "FRACE6"      // father's race recode, 1-6, 9 = unknown
)

// Cleaned column names.
const (
	ColRaceImputed   = "raceImputed"   // 1 if the mother's race was imputed
	ColMothersRace   = "mRace6"        // mother's race recode, 1-6
	ColAge           = "age"           // years
	ColHeight        = "height"        // inches
	ColBMI           = "bmi"           //
	ColNativity      = "nativity"      //
	ColResidence     = "residence"     //
	ColEducation     = "education"     //
	ColFathersRace   = "fRace6"        // father's race recode, 1-6, 9 = unknown
	ColFRaceAssigned = "fRaceAssigned" // 1 if a single race is recorded for the father
)

// more-than-one-race and unknown codes of the race6 recode
const (
	RaceMulti   = 6
	RaceUnknown = 9
)

// RawColumns returns the raw columns the analysis consumes, in cleaned-frame
// order.
func RawColumns() []string {
	return []string{RawRaceImputed, RawMothersRace, RawAge, RawHeight, RawBMI,
		RawNativity, RawResidence, RawEducation, RawFathersRace}
}

// RaceLabels maps the race6 recode to its label.
func RaceLabels() map[int]string {
	return map[int]string{
		1: "White",
		2: "Black",
		3: "AIAN",
		4: "Asian",
		5: "NHOPI",
		6: "More than one race",
	}
}

// CategoricalColumns returns the cleaned categorical columns whose shares the
// report compares across the imputed and directly-reported populations.
func CategoricalColumns() []string {
	return []string{ColMothersRace, ColFRaceAssigned, ColNativity, ColResidence, ColEducation}
}

// ContinuousColumns returns the cleaned continuous columns the report
// summarizes and runs KS tests on.
func ContinuousColumns() []string {
	return []string{ColAge, ColHeight, ColBMI}
}
