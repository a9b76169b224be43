package activity

import "strconv"

// EntryState 是动态分类器的输入：一次收藏条目变更前后的可见状态。
// 创建时变更前状态为nil，删除时变更后状态为nil。
type EntryState struct {
	Status string
	Rating *int
	Source string
}

// Draft 是分类器的输出：一条尚未关联游戏快照的待写入动态。
type Draft struct {
	Type     ActivityType
	Source   string
	OldValue string
	NewValue string
}

// Classify 判定一次条目变更是否值得进入动态流，并给出动态的字段。
// 它是纯函数，按优先级应用以下规则：
//  1. 删除从不产生动态
//  2. 创建产生 game_added
//  3. 状态变化产生 completed 或 status_changed
//  4. 评分从无到有、或在两个不同值之间变化，产生 rating_added
//  5. 其余变更（如仅改动游玩时长或备注）不产生动态
//
// 规则3优先于规则4：状态和评分在同一次更新中都变化时，
// 只产生状态动态，评分变化不进入动态流。
func Classify(old, new *EntryState) (Draft, bool) {
	// 规则1: 删除
	if new == nil {
		return Draft{}, false
	}

	// 规则2: 创建
	if old == nil {
		return Draft{
			Type:     TypeGameAdded,
			Source:   new.Source,
			NewValue: new.Status,
		}, true
	}

	// 规则3: 状态变化
	if old.Status != new.Status {
		activityType := TypeStatusChanged
		if new.Status == "completed" {
			activityType = TypeCompleted
		}
		return Draft{
			Type:     activityType,
			OldValue: old.Status,
			NewValue: new.Status,
		}, true
	}

	// 规则4: 评分变化（从无到有，或两个不同值之间）
	// 评分被移除（从有到无）不产生动态
	if new.Rating != nil && (old.Rating == nil || *old.Rating != *new.Rating) {
		oldValue := "none"
		if old.Rating != nil {
			oldValue = strconv.Itoa(*old.Rating)
		}
		return Draft{
			Type:     TypeRatingAdded,
			OldValue: oldValue,
			NewValue: strconv.Itoa(*new.Rating),
		}, true
	}

	// 规则5: 不值得进入动态流
	return Draft{}, false
}
