package placement

import "github.com/fairwork-za/wilmatch/internal/demographics"

// DefaultInstitutionProvinces returns the built-in institution reference
// table. Institutions not listed here resolve to UnknownInstitution.
func DefaultInstitutionProvinces() map[string]string {
	return map[string]string{
		"University of Cape Town":                 demographics.ProvinceWesternCape,
		"Stellenbosch University":                 demographics.ProvinceWesternCape,
		"University of the Western Cape":          demographics.ProvinceWesternCape,
		"Cape Peninsula University of Technology": demographics.ProvinceWesternCape,
		"University of the Witwatersrand":         demographics.ProvinceGauteng,
		"University of Johannesburg":              demographics.ProvinceGauteng,
		"University of Pretoria":                  demographics.ProvinceGauteng,
		"Tshwane University of Technology":        demographics.ProvinceGauteng,
		"UNISA":                                   demographics.ProvinceGauteng,
		"University of KwaZulu-Natal":             demographics.ProvinceKwaZuluNatal,
		"Durban University of Technology":         demographics.ProvinceKwaZuluNatal,
		"Mangosuthu University of Technology":     demographics.ProvinceKwaZuluNatal,
		"Rhodes University":                       demographics.ProvinceEasternCape,
		"Nelson Mandela University":               demographics.ProvinceEasternCape,
		"University of Fort Hare":                 demographics.ProvinceEasternCape,
		"Walter Sisulu University":                demographics.ProvinceEasternCape,
		"University of the Free State":            demographics.ProvinceFreeState,
		"Central University of Technology":        demographics.ProvinceFreeState,
		"University of Limpopo":                   demographics.ProvinceLimpopo,
		"University of Venda":                     demographics.ProvinceLimpopo,
		"University of Mpumalanga":                demographics.ProvinceMpumalanga,
		"North-West University":                   demographics.ProvinceNorthWest,
		"Sol Plaatje University":                  demographics.ProvinceNorthernCape,
	}
}
