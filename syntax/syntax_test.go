package syntax

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name         string
		value        Value
		descriptor   string
		requireValue bool
		warnings     []string
		errors       []string
	}{
		{
			name:       "text always valid",
			value:      String("abc123"),
			descriptor: "{text}",
		},
		{
			name:         "required empty value",
			value:        String(""),
			descriptor:   "{text}",
			requireValue: true,
			errors:       []string{"Required field is empty."},
		},
		{
			name:       "optional empty value passes silently",
			value:      String(""),
			descriptor: "{text}",
		},
		{
			name:       "optional empty value skips list matching",
			value:      String(""),
			descriptor: "[1|2|3]",
		},
		{
			name:         "absent cell on required field",
			value:        Missing(),
			descriptor:   "{float}",
			requireValue: true,
			errors:       []string{"Required field is empty."},
		},
		{
			name:       "valid unfccc category",
			value:      String("3.D Agricultural Soils"),
			descriptor: "{unfccc_cat}",
		},
		{
			name:       "unfccc category ignores whitespace",
			value:      String("3.D    AgriculturalSoils"),
			descriptor: "{unfccc_cat}",
		},
		{
			name:       "invalid unfccc category",
			value:      String("3.D Cultural Soils"),
			descriptor: "{unfccc_cat}",
			errors:     []string{`Invalid UNFCCC category: "3.D Cultural Soils".`},
		},
		{
			name:       "wkt emits warning only",
			value:      String("POINT (50.586825 6.408977)"),
			descriptor: "{wkt}",
			warnings:   []string{"Syntax is {wkt}, but no automatic checking available yet. Value is: POINT (50.586825 6.408977)"},
		},
		{
			name:       "list match",
			value:      String("A"),
			descriptor: "[A|B]",
		},
		{
			name:       "list mismatch",
			value:      String("C"),
			descriptor: "[A|B]",
			errors:     []string{`Invalid value: "C". Accepted syntax: [A|B].`},
		},
		{
			name:       "unrecognized descriptor shape is inert",
			value:      String("anything"),
			descriptor: "free text syntax",
		},
		{
			name:       "typed bool against bool descriptor",
			value:      Bool(true),
			descriptor: "{bool}",
		},
		{
			name:       "typed float against int descriptor",
			value:      Float(3.0),
			descriptor: "{int}",
		},
		{
			name:       "typed int against float descriptor",
			value:      Int(42),
			descriptor: "{float}",
		},
		{
			name:       "typed timestamp",
			value:      Time(time.Date(2008, 1, 23, 19, 23, 10, 0, time.UTC)),
			descriptor: "{timestamp}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, errors, err := CheckSyntax(tt.value, tt.descriptor, tt.requireValue)
			if err != nil {
				t.Fatalf("CheckSyntax() error = %v", err)
			}
			if diff := cmp.Diff(tt.warnings, warnings); diff != "" {
				t.Errorf("warnings mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.errors, errors); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckSyntaxTypeMismatchIsFatal(t *testing.T) {
	tests := []struct {
		name       string
		value      Value
		descriptor string
	}{
		{"float against bool", Float(1.5), "{bool}"},
		{"bool against float", Bool(true), "{float}"},
		{"float against timestamp", Float(1.5), "{timestamp}"},
		{"int against doi", Int(7), "{doi}"},
		{"bool against element type of list", Bool(false), "{float},..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CheckSyntax(tt.value, tt.descriptor, false)
			if err == nil {
				t.Fatalf("CheckSyntax(%v, %q) expected configuration error, got none", tt.value, tt.descriptor)
			}
		})
	}
}

func TestMatchesSyntaxList(t *testing.T) {
	combination := "[RMSE|NRMSE|MAE|MAPE|SD|HIST|CI{float}|other]"

	valid := []string{"RMSE", "NRMSE", "MAE", "MAPE", "SD", "HIST", "CI.9", "CI.95", "CI0.95", "CI9999", "other"}
	for _, value := range valid {
		match, err := MatchesSyntaxList(String(value), combination)
		if err != nil {
			t.Fatalf("MatchesSyntaxList(%q) error = %v", value, err)
		}
		if !match {
			t.Errorf("MatchesSyntaxList(%q, %q) = false, want true", value, combination)
		}
	}

	invalid := []string{"CIX", "CCC", "-", ""}
	for _, value := range invalid {
		match, err := MatchesSyntaxList(String(value), combination)
		if err != nil {
			t.Fatalf("MatchesSyntaxList(%q) error = %v", value, err)
		}
		if match {
			t.Errorf("MatchesSyntaxList(%q, %q) = true, want false", value, combination)
		}
	}
}

func TestMatchesSyntaxListFloatPrefix(t *testing.T) {
	descriptor := "[RMSE|{float}_version]"

	if match, _ := MatchesSyntaxList(String("0.0001_version"), descriptor); !match {
		t.Error("expected 0.0001_version to match {float}_version")
	}
	for _, value := range []string{"0.0001version", "RMS"} {
		if match, _ := MatchesSyntaxList(String(value), descriptor); match {
			t.Errorf("expected %q not to match %q", value, descriptor)
		}
	}
}

func TestMatchesSyntaxListLiterals(t *testing.T) {
	if match, _ := MatchesSyntaxList(String("100-year"), "[20-year|100-year]"); !match {
		t.Error("expected 100-year to match [20-year|100-year]")
	}
	if match, _ := MatchesSyntaxList(String("2"), "[1|2|3]"); !match {
		t.Error("expected 2 to match [1|2|3]")
	}
	if match, _ := MatchesSyntaxList(String("22"), "[1|2|3]"); match {
		t.Error("expected 22 not to match [1|2|3]")
	}

	chemical := "[CO2|CH4|N2O|HFC-23_CHF3|HFC-134a_CH2FCF3|HFC-152a_CH3CHF2|CF4|C2F6|C3F8|C4F10|c-C4F8|C5F12|C6F14|SF6|NF3|SF5CF3|C4F9OC2H5|CHF2OCF2OC2F4OCHF2|CHF2OCF2OCHF2|CF3I|CH2Br2|CHCl3|CH3Cl|CH2Cl2|other]"
	for _, value := range []string{"CO2", "c-C4F8", "other"} {
		if match, _ := MatchesSyntaxList(String(value), chemical); !match {
			t.Errorf("expected %q to match chemical formula list", value)
		}
	}
}

func TestMatchesSyntaxListTypedValues(t *testing.T) {
	// A typed value can satisfy a scalar-type option but never a literal.
	if match, _ := MatchesSyntaxList(Float(0.5), "[{float}|NULL]"); !match {
		t.Error("expected typed float to match [{float}|NULL]")
	}
	if match, _ := MatchesSyntaxList(Float(2), "[1|2|3]"); match {
		t.Error("typed value must not satisfy exact literal options")
	}
	// A kind mismatch on one option must not abort the OR.
	if match, _ := MatchesSyntaxList(Bool(true), "[{float}|{bool}]"); !match {
		t.Error("expected typed bool to fall through to its matching option")
	}
}

func TestStringTypeMatchErrorsFloat(t *testing.T) {
	for _, value := range []string{"2008", ".1", "-12", "-12.33333333", "0.0", "0"} {
		errs, err := StringTypeMatchErrors(String(value), "{float}")
		if err != nil {
			t.Fatalf("StringTypeMatchErrors(%q) error = %v", value, err)
		}
		if len(errs) != 0 {
			t.Errorf("StringTypeMatchErrors(%q, {float}) = %v, want none", value, errs)
		}
	}

	for _, value := range []string{"08d", "1/2", "NA", "0.3.6"} {
		errs, err := StringTypeMatchErrors(String(value), "{float}")
		if err != nil {
			t.Fatalf("StringTypeMatchErrors(%q) error = %v", value, err)
		}
		want := `Could not convert this value to a float: "` + value + `"`
		if len(errs) != 1 || errs[0] != want {
			t.Errorf("StringTypeMatchErrors(%q, {float}) = %v, want [%s]", value, errs, want)
		}
	}
}

func TestStringTypeMatchErrorsBool(t *testing.T) {
	for _, value := range []string{"true", "false", "TRUE", "False"} {
		errs, _ := StringTypeMatchErrors(String(value), "{bool}")
		if len(errs) != 0 {
			t.Errorf("StringTypeMatchErrors(%q, {bool}) = %v, want none", value, errs)
		}
	}

	errs, _ := StringTypeMatchErrors(String("yes"), "{bool}")
	want := "Invalid {bool} format: yes"
	if len(errs) != 1 || errs[0] != want {
		t.Errorf("StringTypeMatchErrors(yes, {bool}) = %v, want [%s]", errs, want)
	}
}

func TestStringTypeMatchErrorsDOI(t *testing.T) {
	valid := []string{
		"doi:10.1001/issn.103992",
		"doi:10.1001.9939393/issn.103992",
		"DOI:10.9d92j/issn.103.d.d.d.992",
		"doi:10.9fjj0j02j/diojisdkj2--xx.___-e9lj",
	}
	for _, value := range valid {
		errs, _ := StringTypeMatchErrors(String(value), "{doi}")
		if len(errs) != 0 {
			t.Errorf("StringTypeMatchErrors(%q, {doi}) = %v, want none", value, errs)
		}
	}

	invalid := []string{
		"doi:10.1001.10.3/issn.103992",
		"10.1001.10/issn.103992",
		"doi:10.9fjj0j0;];];/diojidlkw.d..w.d..w",
	}
	for _, value := range invalid {
		errs, _ := StringTypeMatchErrors(String(value), "{doi}")
		want := `Invalid DOI format: "` + value + `".`
		if len(errs) != 1 || errs[0] != want {
			t.Errorf("StringTypeMatchErrors(%q, {doi}) = %v, want [%s]", value, errs, want)
		}
	}
}

func TestStringTypeMatchErrorsURL(t *testing.T) {
	valid := []string{"http://www.google.com", "https://www.google.com", "http://abc.net"}
	for _, value := range valid {
		errs, _ := StringTypeMatchErrors(String(value), "{url}")
		if len(errs) != 0 {
			t.Errorf("StringTypeMatchErrors(%q, {url}) = %v, want none", value, errs)
		}
	}

	invalid := []string{
		"htp://www.google.com",
		"http//www.google.com",
		"http:/www.google.com",
		"http://www.google.",
		"abc.net",
	}
	for _, value := range invalid {
		errs, _ := StringTypeMatchErrors(String(value), "{url}")
		want := `Invalid URL format: "` + value + `".`
		if len(errs) != 1 || errs[0] != want {
			t.Errorf("StringTypeMatchErrors(%q, {url}) = %v, want [%s]", value, errs, want)
		}
	}
}

func TestStringTypeMatchErrorsList(t *testing.T) {
	// Valid homogeneous float lists, with and without the space variant of
	// the list suffix.
	for _, descriptor := range []string{"{float},...", "{float}, ..."} {
		for _, value := range []string{"2008,-234.3,0.9,.111", "2"} {
			errs, err := StringTypeMatchErrors(String(value), descriptor)
			if err != nil {
				t.Fatalf("StringTypeMatchErrors(%q, %q) error = %v", value, descriptor, err)
			}
			if len(errs) != 0 {
				t.Errorf("StringTypeMatchErrors(%q, %q) = %v, want none", value, descriptor, errs)
			}
		}
	}

	// One bad element yields exactly one aggregate error, not one per element.
	errs, _ := StringTypeMatchErrors(String("2008, abc"), "{float},...")
	want := `One or more values in list do not match expected format ("{float}"): 2008,abc`
	if len(errs) != 1 || errs[0] != want {
		t.Errorf("aggregate list error = %v, want [%s]", errs, want)
	}

	// Text lists accept anything.
	for _, value := range []string{"2008,x-234.3,0.9, .111", "hello world", ""} {
		errs, _ := StringTypeMatchErrors(String(value), "{text},...")
		if len(errs) != 0 {
			t.Errorf("StringTypeMatchErrors(%q, {text},...) = %v, want none", value, errs)
		}
	}
}

func TestStringTypeMatchErrorsUnknownType(t *testing.T) {
	_, err := StringTypeMatchErrors(String("2008"), "{flot}")
	if err == nil {
		t.Fatal("expected configuration error for unknown type tag")
	}
	if !strings.Contains(err.Error(), `"{flot}"`) {
		t.Errorf("error should name the unknown tag, got %v", err)
	}
}

func TestValueNormalization(t *testing.T) {
	// Whitespace runs collapse, edges trim, and comma-space becomes comma.
	if got := String("  a   b ,  c  ").StringForm(); got != "a b,c" {
		t.Errorf("StringForm() = %q, want %q", got, "a b,c")
	}
	// Typed values pass through unmodified.
	if got := Float(0.95).StringForm(); got != "0.95" {
		t.Errorf("Float StringForm() = %q, want %q", got, "0.95")
	}
	if got := Bool(true).StringForm(); got != "true" {
		t.Errorf("Bool StringForm() = %q, want %q", got, "true")
	}
}
