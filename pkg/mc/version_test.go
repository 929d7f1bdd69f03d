package mc

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.18", V1_18},
		{"1.18.2", V1_18},
		{"b1.8", B1_8},
		{"1.19.4", V1_19},
		{"1.21", V1_21_WD},
		{" 1.7 ", V1_7},
		{"1.7.10", V1_7},
		{"1.16.1", V1_16_1},
		{"1.16.3", V1_16},
		{"1.19.1", V1_19_2},
		{"1.20.4", V1_20},
		{"1.21.1", V1_21_1},
		{"1.21.3", V1_21_3},
		{"1.21.5", V1_21_WD},
		{"newest", V1_21_WD},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"2.0", "1.22", "0.9", "b1.6", "1.20-pre1", "snapshot"} {
		if _, err := ParseVersion(bad); err == nil {
			t.Errorf("ParseVersion(%q) should fail", bad)
		}
	}
}

func TestVersionOrdering(t *testing.T) {
	if !(V1_17 < V1_18 && V1_19_2 < V1_19 && V1_21_3 < V1_21_WD) {
		t.Error("versions must be ordered by release")
	}
	if Undef.Valid() || Version(999).Valid() {
		t.Error("out-of-range versions must not be valid")
	}
}

func TestParseDimension(t *testing.T) {
	for in, want := range map[string]Dimension{"overworld": Overworld, "-1": Nether, "end": End} {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Errorf("ParseDimension(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if Dimension(5).Valid() {
		t.Error("Dimension(5) must not be valid")
	}
}
