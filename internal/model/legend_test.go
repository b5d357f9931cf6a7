package model

import "testing"

func TestLegend_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		legend     Legend
		incubating string
		want       string
	}{
		{
			name:   "legacy",
			legend: LegendLegacy,
			want:   "(l) Legacy or deprecated configuration. Those are variants created for backwards compatibility which are both resolvable and consumable.",
		},
		{
			name:   "incubating default wording",
			legend: LegendIncubating,
			want:   DefaultIncubatingLegend,
		},
		{
			name:       "incubating custom wording",
			legend:     LegendIncubating,
			incubating: "(i) Uses incubating attributes.",
			want:       "(i) Uses incubating attributes.",
		},
		{
			name:       "transitive ignores incubating wording",
			legend:     LegendTransitive,
			incubating: "ignored",
			want:       "(t) Configuration extended transitively.",
		},
		{
			name:   "unknown",
			legend: Legend(99),
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.legend.Text(tt.incubating); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLegend_MarshalText(t *testing.T) {
	t.Parallel()

	got, err := LegendIncubating.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "incubating" {
		t.Errorf("expected incubating, got %q", got)
	}
}
