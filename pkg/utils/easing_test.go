package utils

import "testing"

// TestApproach 测试指数逼近与吸附
func TestApproach(t *testing.T) {
	tests := []struct {
		name     string
		current  Vec2
		target   Vec2
		wantPos  Vec2
		wantDone bool
	}{
		{"移动剩余距离的一部分", Vec2{0, 0}, Vec2{100, 0}, Vec2{20, 0}, false},
		{"进入吸附距离直接到达", Vec2{99.6, 0}, Vec2{100, 0}, Vec2{100, 0}, true},
		{"已在目标处", Vec2{5, 5}, Vec2{5, 5}, Vec2{5, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, done := Approach(tt.current, tt.target, 0.2, 0.5)
			if pos != tt.wantPos || done != tt.wantDone {
				t.Errorf("Expected %v done=%v, got %v done=%v", tt.wantPos, tt.wantDone, pos, done)
			}
		})
	}
}
