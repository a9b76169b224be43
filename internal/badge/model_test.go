package badge

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 0},
		{1, 0},
		{24, 0},
		{25, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{199, 3},
		{200, 4},
		{399, 4},
		{400, 5},
		{10000, 5},
	}

	for _, tt := range tests {
		if got := TierFor(tt.completed); got != tt.want {
			t.Errorf("TierFor(%d) = %d, 期望 %d", tt.completed, got, tt.want)
		}
	}
}

func TestAllTiersOrderedAndIsolated(t *testing.T) {
	tiers := AllTiers()
	if len(tiers) != 6 {
		t.Fatalf("期望6个等级, got %d", len(tiers))
	}
	for i, tier := range tiers {
		if tier.Level != i {
			t.Errorf("第%d个等级的Level = %d, 应按升序排列", i, tier.Level)
		}
		if i > 0 && tier.RequiredGames <= tiers[i-1].RequiredGames {
			t.Errorf("等级%d的门槛应严格大于等级%d", tier.Level, tiers[i-1].Level)
		}
	}

	// 返回的是拷贝，修改不应影响静态定义
	tiers[0].Name = "modified"
	if AllTiers()[0].Name == "modified" {
		t.Error("AllTiers 应返回拷贝而非内部切片")
	}
}
