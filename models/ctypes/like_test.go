package ctypes

import "testing"

func TestLikeStatusToggle(t *testing.T) {
	status, action := LikeActive.Toggle()
	if status != LikeDeleted || action != ActionUnliked {
		t.Errorf("LikeActive.Toggle() = (%v, %v), want (deleted, unliked)", status, action)
	}

	status, action = LikeDeleted.Toggle()
	if status != LikeActive || action != ActionLiked {
		t.Errorf("LikeDeleted.Toggle() = (%v, %v), want (active, liked)", status, action)
	}
}

// 连续切换应该在两个状态间交替，偶数次后回到起点
func TestLikeStatusToggleAlternates(t *testing.T) {
	s := LikeActive
	for i := 0; i < 10; i++ {
		next, action := s.Toggle()
		if next == s {
			t.Fatalf("第 %d 次切换后状态未变化: %v", i+1, s)
		}
		if next == LikeActive && action != ActionLiked {
			t.Fatalf("切换到 active 时动作应为 liked, got %v", action)
		}
		if next == LikeDeleted && action != ActionUnliked {
			t.Fatalf("切换到 deleted 时动作应为 unliked, got %v", action)
		}
		s = next
	}
	if s != LikeActive {
		t.Errorf("偶数次切换后应回到 active, got %v", s)
	}
}
