package ics

import "testing"

func TestParseProperty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		want   Property
		params map[string]string
	}{
		{
			name:   "plain",
			line:   "SUMMARY:Dodgers @ Giants",
			want:   Property{Name: "SUMMARY", Value: "Dodgers @ Giants"},
			params: map[string]string{},
		},
		{
			name:   "with parameter",
			line:   "DTSTART;TZID=America/New_York:20250601T190000",
			want:   Property{Name: "DTSTART", Value: "20250601T190000"},
			params: map[string]string{"TZID": "America/New_York"},
		},
		{
			name:   "lowercase name and parameter key",
			line:   "dtstart;tzid=Europe/Berlin:20250601T190000",
			want:   Property{Name: "DTSTART", Value: "20250601T190000"},
			params: map[string]string{"TZID": "Europe/Berlin"},
		},
		{
			name:   "parameter segment without equals is skipped",
			line:   "DTSTART;GIBBERISH;TZID=UTC:20250601T190000",
			want:   Property{Name: "DTSTART", Value: "20250601T190000"},
			params: map[string]string{"TZID": "UTC"},
		},
		{
			name:   "value keeps colons after the first",
			line:   "DESCRIPTION:see https://example.com/live",
			want:   Property{Name: "DESCRIPTION", Value: "see https://example.com/live"},
			params: map[string]string{},
		},
		{
			name:   "value is trimmed",
			line:   "LOCATION:  Oracle Park  ",
			want:   Property{Name: "LOCATION", Value: "Oracle Park"},
			params: map[string]string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseProperty(tc.line)
			if got.Name != tc.want.Name {
				t.Fatalf("name = %q, want %q", got.Name, tc.want.Name)
			}
			if got.Value != tc.want.Value {
				t.Fatalf("value = %q, want %q", got.Value, tc.want.Value)
			}
			if len(got.Params) != len(tc.params) {
				t.Fatalf("params = %v, want %v", got.Params, tc.params)
			}
			for key, want := range tc.params {
				if got.Params[key] != want {
					t.Fatalf("param %s = %q, want %q", key, got.Params[key], want)
				}
			}
		})
	}
}

// Lines without a colon degrade to a bare upper-cased name instead of an
// error.
func TestParseProperty_NoColonFallback(t *testing.T) {
	t.Parallel()

	got := ParseProperty("  begin ")
	if got.Name != "BEGIN" {
		t.Fatalf("name = %q, want BEGIN", got.Name)
	}
	if got.Value != "" {
		t.Fatalf("expected empty value, got %q", got.Value)
	}
	if len(got.Params) != 0 {
		t.Fatalf("expected no params, got %v", got.Params)
	}
}
