package wizard

import "testing"

func TestPackageNamePattern(t *testing.T) {
	valid := []string{"acme/widget", "acme/widget-box", "acme-corp/widget_box", "acme/widget--box", "a.b/c.d", "acme1/2widget"}
	invalid := []string{"acme", "Acme/widget", "acme/Widget", "acme/widget/x", "-acme/widget", "acme/widget-", "acme widget/box", "acme/"}

	for _, name := range valid {
		if !packageNamePattern.MatchString(name) {
			t.Errorf("%q should be accepted", name)
		}
	}
	for _, name := range invalid {
		if packageNamePattern.MatchString(name) {
			t.Errorf("%q should be rejected", name)
		}
	}
}

func TestFieldPatterns(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		in    string
		want  bool
	}{
		{"type", typePattern.MatchString, "composer-plugin", true},
		{"type upper", typePattern.MatchString, "Library", false},
		{"license", licensePattern.MatchString, "GPL-3.0+", true},
		{"license space", licensePattern.MatchString, "MIT License", false},
		{"version", ValidVersion, "8.2", true},
		{"version patch", ValidVersion, "8.2.1", false},
		{"author name", authorNamePattern.MatchString, "Jean-Luc Picard", true},
		{"author digits", authorNamePattern.MatchString, "R2 D2", false},
		{"email", authorEmailPattern.MatchString, "jane.doe+php@example.co.uk", true},
		{"email no tld", authorEmailPattern.MatchString, "jane@localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.in); got != tt.want {
				t.Errorf("match(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloorCheck(t *testing.T) {
	check := floorCheck("8.1")
	if err := check("8.0"); err == nil {
		t.Error("8.0 should be below the 8.1 floor")
	}
	if err := check("8.1"); err != nil {
		t.Errorf("8.1 should pass: %v", err)
	}
	if err := check("8.10"); err != nil {
		t.Errorf("8.10 should pass: %v", err)
	}
}
