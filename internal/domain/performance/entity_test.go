package performance

import "testing"

func TestTotalScore(t *testing.T) {
	cases := []struct {
		name  string
		items []ReviewItem
		want  float64
	}{
		{"no items", nil, 0},
		{"zero weights", []ReviewItem{{Score: 80, KPIWeight: 0}}, 0},
		{"single item", []ReviewItem{{Score: 80, KPIWeight: 2}}, 80},
		{
			"weighted average",
			[]ReviewItem{
				{Score: 90, KPIWeight: 3},
				{Score: 60, KPIWeight: 1},
			},
			82.5,
		},
		{
			"rounds to two decimals",
			[]ReviewItem{
				{Score: 100, KPIWeight: 1},
				{Score: 100, KPIWeight: 1},
				{Score: 0, KPIWeight: 1},
			},
			66.67,
		},
	}
	for _, c := range cases {
		got := TotalScore(c.items)
		if got != c.want {
			t.Errorf("%s: TotalScore() = %v, want %v", c.name, got, c.want)
		}
	}
}
