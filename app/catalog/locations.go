package catalog

import "slices"

var provinceOrder = []string{
	"Western Cape",
	"Gauteng",
	"Kwa Zulu Natal",
	"Eastern Cape",
	"Free State",
	"Limpopo",
	"Mpumalanga",
	"North West",
	"Northern Cape",
}

var regionsByProvince = map[string][]string{
	"Western Cape":   {"Cape Town CBD", "Northern Suburbs", "Southern Suburbs", "Atlantic Seaboard", "Western Seaboard", "South Peninsula", "Cape Helderberg", "Cape Winelands", "Paarl/Wellington", "Stellenbosch", "Garden Route", "George/Knysna", "West Coast", "Overberg", "Central Karoo"},
	"Gauteng":        {"Johannesburg CBD", "Sandton/Rivonia", "Randburg", "Roodepoort", "Soweto", "Midrand", "Pretoria/Tshwane CBD", "Centurion", "Pretoria East", "Pretoria North", "Ekurhuleni (East Rand)", "Kempton Park", "Brakpan/Benoni", "Sedibeng", "West Rand"},
	"Kwa Zulu Natal": {"Durban Central", "Umhlanga/Ballito", "Durban North", "Durban South", "Pinetown/Westville", "Amanzimtoti", "Pietermaritzburg", "uMgungundlovu", "King Cetshwayo/Richards Bay", "iLembe", "Ugu (South Coast)", "Newcastle"},
	"Eastern Cape":   {"Gqeberha (Port Elizabeth)", "East London (Buffalo City)", "Mthatha", "Sarah Baartman", "Amatole", "Chris Hani", "Joe Gqabi"},
	"Free State":     {"Bloemfontein (Mangaung)", "Welkom", "Sasolburg", "Bethlehem", "Fezile Dabi", "Lejweleputswa", "Thabo Mofutsanyane"},
	"Limpopo":        {"Polokwane (Capricorn)", "Thohoyandou (Vhembe)", "Tzaneen (Mopani)", "Sekhukhune", "Waterberg", "Bela-Bela"},
	"Mpumalanga":     {"Nelspruit (Ehlanzeni)", "Witbank (Nkangala)", "Secunda (Gert Sibande)", "Middelburg", "White River"},
	"North West":     {"Rustenburg (Bojanala)", "Mahikeng", "Potchefstroom (Dr Kenneth Kaunda)", "Klerksdorp", "Brits"},
	"Northern Cape":  {"Kimberley (Frances Baard)", "Upington", "John Taolo Gaetsewe", "Namakwa", "Pixley ka Seme"},
}

func Provinces() []string {
	return slices.Clone(provinceOrder)
}

func RegionsOf(province string) []string {
	return slices.Clone(regionsByProvince[province])
}

func IsProvince(name string) bool {
	_, ok := regionsByProvince[name]
	return ok
}

// RegionBelongsTo reports whether region lies in one of the given provinces.
func RegionBelongsTo(region string, provinces []string) bool {
	for _, province := range provinces {
		if slices.Contains(regionsByProvince[province], region) {
			return true
		}
	}
	return false
}
