package rib

import "regexp"

// Bank describes one issuer in the reference table.
type Bank struct {
	Code        string
	Name        string
	SWIFT       string
	RIBLength   int
	RIBPattern  *regexp.Regexp
	IBANPattern *regexp.Regexp
	Active      bool
	Branches    []Branch
}

// Branch is a regional branch with its own SWIFT code.
type Branch struct {
	Code  string
	SWIFT string
}

// banks is the immutable issuer reference table, keyed by the leading
// 3-digit bank code. Loaded once at init; never mutated.
var banks = map[string]Bank{
	"007": {
		Code:        "007",
		Name:        "Attijariwafa Bank",
		SWIFT:       "BCMAMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^007\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}007\d{21}$`),
		Active:      true,
	},
	"011": {
		Code:        "011",
		Name:        "Bank of Africa (BMCE)",
		SWIFT:       "BMCEMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^011\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}011\d{21}$`),
		Active:      true,
	},
	"013": {
		Code:        "013",
		Name:        "BMCI",
		SWIFT:       "BMCIMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^013\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}013\d{21}$`),
		Active:      true,
	},
	"021": {
		Code:        "021",
		Name:        "Crédit du Maroc",
		SWIFT:       "CDMAMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^021\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}021\d{21}$`),
		Active:      true,
	},
	"022": {
		Code:        "022",
		Name:        "Société Générale Maroc",
		SWIFT:       "SGMBMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^022\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}022\d{21}$`),
		Active:      true,
	},
	"050": {
		Code:        "050",
		Name:        "CFG Bank",
		SWIFT:       "CFGKMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^050\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}050\d{21}$`),
		Active:      true,
	},
	"101": {
		Code:        "101",
		Name:        "Banque Populaire",
		SWIFT:       "BCPOMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^101\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}101\d{21}$`),
		Active:      true,
		Branches: []Branch{
			{Code: "010", SWIFT: "BCPOMAMCCAS"},
			{Code: "027", SWIFT: "BCPOMAMCRAB"},
			{Code: "045", SWIFT: "BCPOMAMCMAR"},
		},
	},
	"225": {
		Code:        "225",
		Name:        "Crédit Agricole du Maroc",
		SWIFT:       "ACMAMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^225\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}225\d{21}$`),
		Active:      true,
	},
	"230": {
		Code:        "230",
		Name:        "CIH Bank",
		SWIFT:       "CIHMMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^230\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}230\d{21}$`),
		Active:      true,
	},
	"350": {
		Code:        "350",
		Name:        "Al Barid Bank",
		SWIFT:       "ABBMMAMC",
		RIBLength:   24,
		RIBPattern:  regexp.MustCompile(`^350\d{21}$`),
		IBANPattern: regexp.MustCompile(`^MA\d{2}350\d{21}$`),
		Active:      true,
	},
}

// LookupBank returns the issuer registered under the given 3-digit bank
// code. The table is read-only.
func LookupBank(code string) (Bank, bool) {
	b, ok := banks[code]
	return b, ok
}

// BankCodes returns the registered bank codes, useful for demos and
// test-value generation. Order is unspecified.
func BankCodes() []string {
	codes := make([]string, 0, len(banks))
	for code := range banks {
		codes = append(codes, code)
	}
	return codes
}
