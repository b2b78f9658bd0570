package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Muted {
		t.Error("Muted: got true, want false")
	}
	if settings.CameraMode != "follow" {
		t.Errorf("CameraMode: got %q, want follow", settings.CameraMode)
	}
	if settings.LastEngine != "pioneer" || settings.LastWagon != "gunner" || settings.LastDifficulty != "normal" {
		t.Errorf("unexpected default loadout: %+v", settings)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下 Save() 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	// 降级模式下 Load() 恢复默认值
	sm.SetMuted(true)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().Muted {
		t.Error("After Load() in degraded mode, Muted should be reset to false")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_loopline_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetMuted(true)
	sm1.SetCameraMode("birdseye")
	sm1.SetFullscreen(true)
	sm1.RememberLoadout("bastion", "tesla", "hard")

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Muted {
		t.Error("Loaded Muted: got false, want true")
	}
	if settings.CameraMode != "birdseye" {
		t.Errorf("Loaded CameraMode: got %q, want birdseye", settings.CameraMode)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.LastEngine != "bastion" || settings.LastWagon != "tesla" || settings.LastDifficulty != "hard" {
		t.Errorf("Loaded loadout mismatch: %+v", settings)
	}
}

// TestSetCameraMode 测试摄像机模式的取值校验
func TestSetCameraMode(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"birdseye", "birdseye"},
		{"follow", "follow"},
		{"orbit", "follow"},
		{"", "follow"},
	}

	for _, tt := range tests {
		sm.SetCameraMode(tt.input)
		if sm.GetSettings().CameraMode != tt.expected {
			t.Errorf("SetCameraMode(%q): got %q, want %q", tt.input, sm.GetSettings().CameraMode, tt.expected)
		}
	}
}
