package domain

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{250, 2},
		{10050, 100},
	}
	for _, tt := range tests {
		p := VolunteerProfile{TotalXP: tt.xp}
		if got := p.Level(); got != tt.want {
			t.Errorf("Level() with xp=%d = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestRankTierBoundaries(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want string
	}{
		{"level 0", 0, RankRookie},
		{"level 10", 1000, RankRookie},
		{"level 11", 1100, RankSkilled},
		{"level 30", 3000, RankSkilled},
		{"level 31", 3100, RankVeteran},
		{"level 60", 6000, RankVeteran},
		{"level 61", 6100, RankElite},
		{"level 100", 10000, RankElite},
		{"level 101", 10100, RankLegend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := VolunteerProfile{TotalXP: tt.xp}
			if got := p.Rank(); got != tt.want {
				t.Errorf("Rank() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecomputedXP(t *testing.T) {
	p := VolunteerProfile{
		TotalHours: 12,
		Tags: []Tag{
			{Name: "leader", XPBonus: 50},
			{Name: "medic", XPBonus: 30},
		},
	}
	if got := p.RecomputedXP(); got != 92 {
		t.Errorf("RecomputedXP() = %d, want 92", got)
	}

	empty := VolunteerProfile{TotalHours: 7}
	if got := empty.RecomputedXP(); got != 7 {
		t.Errorf("RecomputedXP() without tags = %d, want 7", got)
	}
}
