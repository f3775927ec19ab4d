package demographics

// Canonical names of the nine South African provinces.
const (
	ProvinceEasternCape  = "Eastern Cape"
	ProvinceFreeState    = "Free State"
	ProvinceGauteng      = "Gauteng"
	ProvinceKwaZuluNatal = "KwaZulu-Natal"
	ProvinceLimpopo      = "Limpopo"
	ProvinceMpumalanga   = "Mpumalanga"
	ProvinceNorthernCape = "Northern Cape"
	ProvinceNorthWest    = "North West"
	ProvinceWesternCape  = "Western Cape"
)

// IsCanonicalProvince reports whether name is one of the nine canonical
// province names.
func IsCanonicalProvince(name string) bool {
	switch name {
	case ProvinceEasternCape, ProvinceFreeState, ProvinceGauteng,
		ProvinceKwaZuluNatal, ProvinceLimpopo, ProvinceMpumalanga,
		ProvinceNorthernCape, ProvinceNorthWest, ProvinceWesternCape:
		return true
	}
	return false
}

// DefaultProvinceSynonyms returns the built-in province alias table. Every
// province carries at least its two-letter abbreviation and its full name.
func DefaultProvinceSynonyms() map[string]string {
	return map[string]string{
		"ec":            ProvinceEasternCape,
		"eastern cape":  ProvinceEasternCape,
		"fs":            ProvinceFreeState,
		"free state":    ProvinceFreeState,
		"freestate":     ProvinceFreeState,
		"gp":            ProvinceGauteng,
		"gauteng":       ProvinceGauteng,
		"kzn":           ProvinceKwaZuluNatal,
		"kwazulu-natal": ProvinceKwaZuluNatal,
		"kwazulu natal": ProvinceKwaZuluNatal,
		"natal":         ProvinceKwaZuluNatal,
		"lp":            ProvinceLimpopo,
		"lim":           ProvinceLimpopo,
		"limpopo":       ProvinceLimpopo,
		"mp":            ProvinceMpumalanga,
		"mpumalanga":    ProvinceMpumalanga,
		"nc":            ProvinceNorthernCape,
		"northern cape": ProvinceNorthernCape,
		"nw":            ProvinceNorthWest,
		"north west":    ProvinceNorthWest,
		"north-west":    ProvinceNorthWest,
		"wc":            ProvinceWesternCape,
		"western cape":  ProvinceWesternCape,
	}
}

// DefaultLanguageSynonyms returns the built-in language alias table covering
// the eleven official South African languages, including short forms and
// common misspellings.
func DefaultLanguageSynonyms() map[string]string {
	return map[string]string{
		"afrikaans":      "Afrikaans",
		"afrikans":       "Afrikaans",
		"afr":            "Afrikaans",
		"english":        "English",
		"eng":            "English",
		"isindebele":     "isiNdebele",
		"ndebele":        "isiNdebele",
		"isixhosa":       "isiXhosa",
		"xhosa":          "isiXhosa",
		"xhoza":          "isiXhosa",
		"isizulu":        "isiZulu",
		"zulu":           "isiZulu",
		"zoeloe":         "isiZulu",
		"sepedi":         "Sepedi",
		"pedi":           "Sepedi",
		"northern sotho": "Sepedi",
		"sesotho":        "Sesotho",
		"sotho":          "Sesotho",
		"southern sotho": "Sesotho",
		"setswana":       "Setswana",
		"tswana":         "Setswana",
		"siswati":        "siSwati",
		"swati":          "siSwati",
		"swazi":          "siSwati",
		"tshivenda":      "Tshivenda",
		"venda":          "Tshivenda",
		"xitsonga":       "Xitsonga",
		"tsonga":         "Xitsonga",
		"shangaan":       "Xitsonga",
	}
}
