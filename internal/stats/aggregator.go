package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/SlpAus/game-shelf-backend/internal/badge"
)

// ErrInconsistentAggregate 表示重算后的聚合未通过一致性校验。
// 它不应该出现；一旦出现，触发它的整个写事务都会被回滚。
var ErrInconsistentAggregate = errors.New("统计聚合未通过一致性校验")

// EntryFact 是聚合器的输入：单个收藏条目中与统计相关的事实。
// 调用方负责从收藏条目和游戏目录中装配它。
type EntryFact struct {
	// Status 是条目状态: wishlist / playing / completed / dropped
	Status string
	// Rating 是用户评分(1-10)，未评分时为nil
	Rating *int
	// Genres 是条目对应游戏的类型标签
	Genres []string
}

// BuildAggregate 对一个用户的全部收藏事实做整体重算，返回新的统计聚合。
// 它是纯函数：相同的输入永远产生相同的聚合，可以无条件重试。
func BuildAggregate(userID string, facts []EntryFact) UserStats {
	agg := UserStats{UserID: userID}

	// 1. 按状态计数
	for _, f := range facts {
		agg.TotalGames++
		switch f.Status {
		case "completed":
			agg.CompletedGames++
		case "wishlist":
			agg.WishlistGames++
		case "playing":
			agg.PlayingGames++
		case "dropped":
			agg.DroppedGames++
		}
	}

	// 2. 对已评分条目求算术平均，保留1位小数
	ratingSum := 0
	for _, f := range facts {
		if f.Rating != nil {
			ratingSum += *f.Rating
			agg.TotalRatings++
		}
	}
	if agg.TotalRatings > 0 {
		avg := math.Round(float64(ratingSum)/float64(agg.TotalRatings)*10) / 10
		agg.AverageRating = &avg
	}

	// 3. 在已通关条目的类型多重集中找出现次数最多的类型
	// 并列时取字典序最小者，保证结果与遍历顺序无关
	genreCounts := make(map[string]int)
	for _, f := range facts {
		if f.Status != "completed" {
			continue
		}
		for _, g := range f.Genres {
			genreCounts[g]++
		}
	}
	var favorite string
	favoriteCount := 0
	for g, count := range genreCounts {
		if count > favoriteCount || (count == favoriteCount && g < favorite) {
			favorite = g
			favoriteCount = count
		}
	}
	if favoriteCount > 0 {
		agg.FavoriteGenre = &favorite
	}

	// 4. 查找已通关数对应的徽章等级
	agg.BadgeTier = badge.TierFor(agg.CompletedGames)

	return agg
}

// ValidateAggregate 校验聚合的内部恒等式。
func ValidateAggregate(agg UserStats) error {
	sum := agg.CompletedGames + agg.WishlistGames + agg.PlayingGames + agg.DroppedGames
	if agg.TotalGames != sum {
		return fmt.Errorf("%w: 总数 %d 不等于各状态之和 %d", ErrInconsistentAggregate, agg.TotalGames, sum)
	}
	if (agg.AverageRating != nil) != (agg.TotalRatings > 0) {
		return fmt.Errorf("%w: 平均分与评分数不匹配", ErrInconsistentAggregate)
	}
	return nil
}
