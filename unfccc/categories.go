// Package unfccc provides validity lookups for UNFCCC Annex 1 reporting
// categories as used in emissions-report tables.
package unfccc

import "strings"

// categories lists the Annex 1 common-reporting-format category codes with
// their names, as they appear in the ERMIN specification.
var categories = []string{
	"1 Energy",
	"1.A Fuel Combustion Activities",
	"1.A.1 Energy Industries",
	"1.A.2 Manufacturing Industries and Construction",
	"1.A.3 Transport",
	"1.A.4 Other Sectors",
	"1.A.5 Other",
	"1.B Fugitive Emissions from Fuels",
	"1.B.1 Solid Fuels",
	"1.B.2 Oil and Natural Gas",
	"1.C CO2 Transport and Storage",
	"2 Industrial Processes and Product Use",
	"2.A Mineral Industry",
	"2.B Chemical Industry",
	"2.C Metal Industry",
	"2.D Non-Energy Products from Fuels and Solvent Use",
	"2.E Electronics Industry",
	"2.F Product Uses as Substitutes for Ozone Depleting Substances",
	"2.G Other Product Manufacture and Use",
	"2.H Other",
	"3 Agriculture",
	"3.A Enteric Fermentation",
	"3.B Manure Management",
	"3.C Rice Cultivation",
	"3.D Agricultural Soils",
	"3.E Prescribed Burning of Savannas",
	"3.F Field Burning of Agricultural Residues",
	"3.G Liming",
	"3.H Urea Application",
	"3.I Other Carbon-containing Fertilizers",
	"3.J Other",
	"4 Land Use, Land-Use Change and Forestry",
	"4.A Forest Land",
	"4.B Cropland",
	"4.C Grassland",
	"4.D Wetlands",
	"4.E Settlements",
	"4.F Other Land",
	"4.G Harvested Wood Products",
	"4.H Other",
	"5 Waste",
	"5.A Solid Waste Disposal",
	"5.B Biological Treatment of Solid Waste",
	"5.C Incineration and Open Burning of Waste",
	"5.D Wastewater Treatment and Discharge",
	"5.E Other",
	"6 Other",
}

// byStrippedForm indexes categories by their whitespace-free form, since
// input tables are inconsistent about spacing inside category names.
var byStrippedForm = func() map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[stripWhitespace(c)] = c
	}
	return m
}()

// IsValidCategory reports whether s names a known UNFCCC Annex 1 category.
// All whitespace differences are ignored; the comparison is otherwise exact.
func IsValidCategory(s string) bool {
	_, ok := byStrippedForm[stripWhitespace(s)]
	return ok
}

// Canonical returns the specification spelling of a category, matching with
// the same whitespace-insensitive rule as IsValidCategory.
func Canonical(s string) (string, bool) {
	c, ok := byStrippedForm[stripWhitespace(s)]
	return c, ok
}

// Categories returns all known category names in specification order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
