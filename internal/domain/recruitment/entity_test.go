package recruitment

import "testing"

func TestNormalizeProvider(t *testing.T) {
	cases := []struct {
		segment string
		want    string
	}{
		{"linkedin", SourceLinkedIn},
		{"LinkedIn", SourceLinkedIn},
		{"linked_in", SourceLinkedIn},
		{"naukri", SourceNaukri},
		{"Naukri.com", SourceNaukri},
		{" naukri ", SourceNaukri},
		{"indeed", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeProvider(c.segment)
		if got != c.want {
			t.Errorf("NormalizeProvider(%q) = %q, want %q", c.segment, got, c.want)
		}
	}
}
