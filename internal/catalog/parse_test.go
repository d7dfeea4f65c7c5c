package catalog

import (
	"testing"

	"carquiz/internal/lexicon"
)

// TestParseStemRecoversMetadata verifies year detection, make
// resolution, and model humanization on typical filenames.
func TestParseStemRecoversMetadata(t *testing.T) {
	lex := lexicon.Default()
	cases := []struct {
		stem      string
		wantMake  string
		wantModel string
		wantYear  int
	}{
		{"ford_mustang_gt_2018_01", "Ford", "Mustang Gt", 2018},
		{"chevy_camaro_2020", "Chevrolet", "Camaro", 2020},
		{"land_rover_discovery_2019_03", "Land Rover", "Discovery", 2019},
		{"mercedes_benz_c300_2021_front", "Mercedes-Benz", "C300", 2021},
		{"bmw_M3_1995_02", "BMW", "M3", 1995},
		{"toyota_corolla_le_2010", "Toyota", "Corolla Le", 2010},
	}
	for _, tc := range cases {
		record, ok := ParseStem(tc.stem, lex)
		if !ok {
			t.Fatalf("ParseStem(%q) failed", tc.stem)
		}
		if record.Make != tc.wantMake || record.Model != tc.wantModel || record.Year != tc.wantYear {
			t.Fatalf("ParseStem(%q) = {%q %q %d}, want {%q %q %d}",
				tc.stem, record.Make, record.Model, record.Year,
				tc.wantMake, tc.wantModel, tc.wantYear)
		}
	}
}

// TestParseStemFallbackMake verifies the first token becomes the make
// when the lexicon cannot resolve one.
func TestParseStemFallbackMake(t *testing.T) {
	record, ok := ParseStem("zonda_roadster_2005", lexicon.Default())
	if !ok {
		t.Fatalf("expected fallback parse to succeed")
	}
	if record.Make != "Zonda" || record.Model != "Roadster" || record.Year != 2005 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

// TestParseStemRejections verifies the failure cases: no year token,
// year leading the stem, and no model tokens after the make.
func TestParseStemRejections(t *testing.T) {
	lex := lexicon.Default()
	stems := []string{
		"ford_mustang",
		"2018_ford_mustang",
		"ford_2018",
		"land_rover_2019",
		"ford_mustang_1949",
		"ford_mustang_2036",
		"ford_model_t_1908",
		"",
	}
	for _, stem := range stems {
		if record, ok := ParseStem(stem, lex); ok {
			t.Fatalf("ParseStem(%q) = %+v, want failure", stem, record)
		}
	}
}

// TestParseStemFirstYearWins verifies the earliest in-range year token
// is used even when later tokens also look like years.
func TestParseStemFirstYearWins(t *testing.T) {
	record, ok := ParseStem("bmw_m3_1995_2020", lexicon.Default())
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if record.Year != 1995 {
		t.Fatalf("expected first year 1995, got %d", record.Year)
	}
}

// TestHumanizeToken verifies the acronym, digit, and capitalization rules.
func TestHumanizeToken(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"GT", "GT"},
		{"AMG", "AMG"},
		{"4X4", "4X4"},
		{"911", "911"},
		{"gt", "Gt"},
		{"4x4", "4x4"},
		{"mustang", "Mustang"},
		{"x-type", "X Type"},
		{"cx-5", "Cx 5"},
		{"m3", "M3"},
		{"sls", "Sls"},
	}
	for _, tc := range cases {
		if got := humanizeToken(tc.input); got != tc.want {
			t.Fatalf("humanizeToken(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestFindYearIndex verifies prefix and range filtering of year tokens.
func TestFindYearIndex(t *testing.T) {
	cases := []struct {
		tokens []string
		want   int
	}{
		{[]string{"ford", "mustang", "2018"}, 2},
		{[]string{"2018", "ford"}, 0},
		{[]string{"ford", "1949"}, -1},
		{[]string{"ford", "2036"}, -1},
		{[]string{"ford", "1950"}, 1},
		{[]string{"ford", "2035"}, 1},
		{[]string{"ford", "20188"}, -1},
		{[]string{"ford", "mustang"}, -1},
	}
	for _, tc := range cases {
		if got := findYearIndex(tc.tokens); got != tc.want {
			t.Fatalf("findYearIndex(%v) = %d, want %d", tc.tokens, got, tc.want)
		}
	}
}
