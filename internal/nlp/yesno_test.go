package nlp

import "testing"

func TestExtractYesNo(t *testing.T) {
	tests := []struct {
		in        string
		want      bool
		wantFound bool
	}{
		// exact matches
		{"yes", true, true},
		{"y", true, true},
		{"okay", true, true},
		{"of course", true, true},
		{"no", false, true},
		{"nope", false, true},
		{"never", false, true},

		// whole-input fuzzy
		{"yess", true, true},
		{"nopee", false, true},

		// token counting
		{"yes please definitely", true, true},
		{"no thanks never", false, true},

		// ambiguous
		{"maybe", false, false},
		{"banana", false, false},
		{"", false, false},
		{"   ", false, false},
	}

	for _, tt := range tests {
		got, found := ExtractYesNo(tt.in)
		if found != tt.wantFound {
			t.Errorf("ExtractYesNo(%q) found = %v, want %v", tt.in, found, tt.wantFound)
			continue
		}
		if found && got != tt.want {
			t.Errorf("ExtractYesNo(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExtractYesNoTieIsAmbiguous(t *testing.T) {
	// One affirmative token and one negative token cancel out.
	if _, found := ExtractYesNo("yes no"); found {
		t.Error("tied token counts should be ambiguous")
	}
}

func TestExtractYesNoExactBeatsFuzzy(t *testing.T) {
	// "not" is an exact negative even though it sits close to "no" and
	// other words in both lists.
	got, found := ExtractYesNo("not")
	if !found || got != false {
		t.Errorf("got (%v, %v), want (false, true)", got, found)
	}
}
