package cnesbeds

import "strings"

// RegionCode identifies one of Brazil's 27 federated units (26 states plus
// the federal district) by its two-letter UF acronym.
type RegionCode string

// The 27 federated units.
const (
	RJ RegionCode = "RJ"
	SP RegionCode = "SP"
	ES RegionCode = "ES"
	MG RegionCode = "MG"
	SC RegionCode = "SC"
	RS RegionCode = "RS"
	PR RegionCode = "PR"
	DF RegionCode = "DF"
	GO RegionCode = "GO"
	MT RegionCode = "MT"
	MS RegionCode = "MS"
	MA RegionCode = "MA"
	PI RegionCode = "PI"
	CE RegionCode = "CE"
	RN RegionCode = "RN"
	PB RegionCode = "PB"
	PE RegionCode = "PE"
	AL RegionCode = "AL"
	SE RegionCode = "SE"
	BA RegionCode = "BA"
	RO RegionCode = "RO"
	AC RegionCode = "AC"
	AM RegionCode = "AM"
	RR RegionCode = "RR"
	PA RegionCode = "PA"
	AP RegionCode = "AP"
	TO RegionCode = "TO"
)

// ibgeCodes maps each UF to the numeric identifier the registry uses in
// discovery URLs. Static configuration data, never derived at runtime.
var ibgeCodes = map[RegionCode]int{
	RJ: 33, SP: 35, ES: 32, MG: 31, SC: 42,
	RS: 43, PR: 41, DF: 53, GO: 52, MT: 51,
	MS: 50, MA: 21, PI: 22, CE: 23, RN: 24,
	PB: 25, PE: 26, AL: 27, SE: 28, BA: 29,
	RO: 11, AC: 12, AM: 13, RR: 14, PA: 15,
	AP: 16, TO: 17,
}

// AllRegions returns the 27 federated units in national collection order.
func AllRegions() []RegionCode {
	return []RegionCode{
		RJ, SP, ES, MG, SC, RS, PR, DF, GO,
		MT, MS, MA, PI, CE, RN, PB, PE, AL,
		SE, BA, RO, AC, AM, RR, PA, AP, TO,
	}
}

// IBGE returns the numeric registry identifier for the region.
// Returns ENOTFOUND for codes outside the fixed set.
func (r RegionCode) IBGE() (int, error) {
	code, ok := ibgeCodes[r]
	if !ok {
		return 0, Errorf(ENOTFOUND, "unknown region code %q", string(r))
	}
	return code, nil
}

// Valid reports whether r is one of the 27 fixed codes.
func (r RegionCode) Valid() bool {
	_, ok := ibgeCodes[r]
	return ok
}

// ParseRegion converts a UF acronym into a RegionCode, accepting any case.
// Returns EINVALID for values outside the fixed set.
func ParseRegion(s string) (RegionCode, error) {
	r := RegionCode(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", Errorf(EINVALID, "invalid region code %q", s)
	}
	return r, nil
}
