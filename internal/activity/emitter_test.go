package activity

import "testing"

func ratingPtr(v int) *int { return &v }

func TestClassifyDelete(t *testing.T) {
	old := &EntryState{Status: "completed", Source: "manual"}
	if _, ok := Classify(old, nil); ok {
		t.Error("删除条目不应产生动态")
	}
}

func TestClassifyCreate(t *testing.T) {
	draft, ok := Classify(nil, &EntryState{Status: "wishlist", Source: "manual"})
	if !ok {
		t.Fatal("创建条目应产生动态")
	}
	if draft.Type != TypeGameAdded {
		t.Errorf("Type = %s, 期望 %s", draft.Type, TypeGameAdded)
	}
	if draft.NewValue != "wishlist" {
		t.Errorf("NewValue = %q, 期望 wishlist", draft.NewValue)
	}
	if draft.Source != "manual" {
		t.Errorf("Source = %q, 期望 manual", draft.Source)
	}
}

func TestClassifyCreateKeepsImportSource(t *testing.T) {
	draft, ok := Classify(nil, &EntryState{Status: "playing", Source: "steam"})
	if !ok || draft.Source != "steam" {
		t.Errorf("导入创建应保留来源, got %+v ok=%v", draft, ok)
	}
}

func TestClassifyStatusChange(t *testing.T) {
	tests := []struct {
		name     string
		oldSt    string
		newSt    string
		wantType ActivityType
	}{
		{"普通状态变化", "wishlist", "playing", TypeStatusChanged},
		{"变为已通关", "playing", "completed", TypeCompleted},
		{"从已通关变回", "completed", "playing", TypeStatusChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, ok := Classify(
				&EntryState{Status: tt.oldSt},
				&EntryState{Status: tt.newSt},
			)
			if !ok {
				t.Fatal("状态变化应产生动态")
			}
			if draft.Type != tt.wantType {
				t.Errorf("Type = %s, 期望 %s", draft.Type, tt.wantType)
			}
			if draft.OldValue != tt.oldSt || draft.NewValue != tt.newSt {
				t.Errorf("新旧值不正确: %+v", draft)
			}
		})
	}
}

func TestClassifyRatingAdded(t *testing.T) {
	// 从无到有
	draft, ok := Classify(
		&EntryState{Status: "completed"},
		&EntryState{Status: "completed", Rating: ratingPtr(9)},
	)
	if !ok {
		t.Fatal("首次评分应产生动态")
	}
	if draft.Type != TypeRatingAdded || draft.OldValue != "none" || draft.NewValue != "9" {
		t.Errorf("首次评分的动态字段不正确: %+v", draft)
	}

	// 两个不同值之间
	draft, ok = Classify(
		&EntryState{Status: "completed", Rating: ratingPtr(5)},
		&EntryState{Status: "completed", Rating: ratingPtr(7)},
	)
	if !ok {
		t.Fatal("评分变化应产生动态")
	}
	if draft.OldValue != "5" || draft.NewValue != "7" {
		t.Errorf("评分变化的新旧值不正确: %+v", draft)
	}
}

func TestClassifyRatingUnchanged(t *testing.T) {
	if _, ok := Classify(
		&EntryState{Status: "completed", Rating: ratingPtr(8)},
		&EntryState{Status: "completed", Rating: ratingPtr(8)},
	); ok {
		t.Error("评分未变化时不应产生动态")
	}
}

func TestClassifyRatingRemoved(t *testing.T) {
	if _, ok := Classify(
		&EntryState{Status: "completed", Rating: ratingPtr(8)},
		&EntryState{Status: "completed"},
	); ok {
		t.Error("评分被移除时不应产生动态")
	}
}

func TestClassifyStatusBeatsRating(t *testing.T) {
	// 状态和评分同时变化时只产生状态动态
	draft, ok := Classify(
		&EntryState{Status: "playing"},
		&EntryState{Status: "completed", Rating: ratingPtr(10)},
	)
	if !ok {
		t.Fatal("状态变化应产生动态")
	}
	if draft.Type != TypeCompleted {
		t.Errorf("状态与评分同时变化时应优先产生状态动态, got %s", draft.Type)
	}
}

func TestClassifyNoMeaningfulChange(t *testing.T) {
	// 仅游玩时长/备注变更时状态与评分均不变
	if _, ok := Classify(
		&EntryState{Status: "playing"},
		&EntryState{Status: "playing"},
	); ok {
		t.Error("无实质变化时不应产生动态")
	}
}
