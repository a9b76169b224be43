package stats

import (
	"errors"
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestBuildAggregateCounts(t *testing.T) {
	facts := []EntryFact{
		{Status: "wishlist"},
		{Status: "wishlist"},
		{Status: "playing"},
		{Status: "completed"},
		{Status: "dropped"},
	}

	agg := BuildAggregate("u1", facts)

	if agg.TotalGames != 5 {
		t.Errorf("TotalGames = %d, 期望 5", agg.TotalGames)
	}
	if agg.WishlistGames != 2 || agg.PlayingGames != 1 || agg.CompletedGames != 1 || agg.DroppedGames != 1 {
		t.Errorf("各状态计数不正确: %+v", agg)
	}
	// 恒等式: total = completed + wishlist + playing + dropped
	sum := agg.CompletedGames + agg.WishlistGames + agg.PlayingGames + agg.DroppedGames
	if agg.TotalGames != sum {
		t.Errorf("总数恒等式被破坏: total=%d sum=%d", agg.TotalGames, sum)
	}
}

func TestBuildAggregateAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []*int
		want    *float64
		count   int
	}{
		{"无评分", []*int{nil, nil}, nil, 0},
		{"单个评分", []*int{intPtr(9)}, floatPtr(9.0), 1},
		{"平均值保留1位小数", []*int{intPtr(7), intPtr(8)}, floatPtr(7.5), 2},
		{"四舍五入", []*int{intPtr(1), intPtr(2), intPtr(2)}, floatPtr(1.7), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := make([]EntryFact, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				facts = append(facts, EntryFact{Status: "playing", Rating: r})
			}
			agg := BuildAggregate("u1", facts)

			if agg.TotalRatings != tt.count {
				t.Errorf("TotalRatings = %d, 期望 %d", agg.TotalRatings, tt.count)
			}
			if (agg.AverageRating == nil) != (tt.want == nil) {
				t.Fatalf("AverageRating 空值不匹配: got=%v want=%v", agg.AverageRating, tt.want)
			}
			if tt.want != nil && *agg.AverageRating != *tt.want {
				t.Errorf("AverageRating = %v, 期望 %v", *agg.AverageRating, *tt.want)
			}
			// 恒等式: 平均分非空 当且仅当 评分数大于0
			if (agg.AverageRating != nil) != (agg.TotalRatings > 0) {
				t.Errorf("平均分恒等式被破坏: %+v", agg)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildAggregateFavoriteGenre(t *testing.T) {
	facts := []EntryFact{
		{Status: "completed", Genres: []string{"indie", "platformer"}},
		{Status: "completed", Genres: []string{"indie", "roguelike"}},
		// 未通关的条目不参与最爱类型统计
		{Status: "playing", Genres: []string{"fps", "fps", "fps"}},
	}

	agg := BuildAggregate("u1", facts)
	if agg.FavoriteGenre == nil || *agg.FavoriteGenre != "indie" {
		t.Errorf("FavoriteGenre = %v, 期望 indie", agg.FavoriteGenre)
	}
}

func TestBuildAggregateFavoriteGenreTieBreak(t *testing.T) {
	// indie 和 fps 各出现一次，按字典序取 fps
	facts := []EntryFact{
		{Status: "completed", Genres: []string{"indie"}},
		{Status: "completed", Genres: []string{"fps"}},
	}

	agg := BuildAggregate("u1", facts)
	if agg.FavoriteGenre == nil || *agg.FavoriteGenre != "fps" {
		t.Errorf("并列时应取字典序最小者, got %v", agg.FavoriteGenre)
	}
}

func TestBuildAggregateFavoriteGenreEmpty(t *testing.T) {
	facts := []EntryFact{
		{Status: "wishlist", Genres: []string{"indie"}},
	}
	agg := BuildAggregate("u1", facts)
	if agg.FavoriteGenre != nil {
		t.Errorf("没有已通关条目时最爱类型应为空, got %v", *agg.FavoriteGenre)
	}
}

func TestBuildAggregateBadgeTier(t *testing.T) {
	tests := []struct {
		completed int
		wantTier  int
	}{
		{0, 0},
		{24, 0},
		{25, 1},
		{100, 3},
		{400, 5},
		{1000, 5},
	}

	for _, tt := range tests {
		facts := make([]EntryFact, tt.completed)
		for i := range facts {
			facts[i] = EntryFact{Status: "completed"}
		}
		agg := BuildAggregate("u1", facts)
		if agg.BadgeTier != tt.wantTier {
			t.Errorf("completed=%d: BadgeTier = %d, 期望 %d", tt.completed, agg.BadgeTier, tt.wantTier)
		}
	}
}

func TestBuildAggregateIdempotent(t *testing.T) {
	facts := []EntryFact{
		{Status: "completed", Rating: intPtr(8), Genres: []string{"rpg"}},
		{Status: "wishlist"},
	}

	first := BuildAggregate("u1", facts)
	second := BuildAggregate("u1", facts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("相同输入的两次重算结果不一致:\n%+v\n%+v", first, second)
	}
}

func TestValidateAggregate(t *testing.T) {
	good := BuildAggregate("u1", []EntryFact{{Status: "completed", Rating: intPtr(7)}})
	if err := ValidateAggregate(good); err != nil {
		t.Errorf("合法聚合不应报错: %v", err)
	}

	bad := good
	bad.TotalGames = 99
	if err := ValidateAggregate(bad); !errors.Is(err, ErrInconsistentAggregate) {
		t.Errorf("总数恒等式被破坏时应返回 ErrInconsistentAggregate, got %v", err)
	}

	bad2 := good
	bad2.TotalRatings = 0
	if err := ValidateAggregate(bad2); !errors.Is(err, ErrInconsistentAggregate) {
		t.Errorf("平均分恒等式被破坏时应返回 ErrInconsistentAggregate, got %v", err)
	}
}
