package game

import (
	"testing"

	"github.com/gonewx/loopline/pkg/config"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState()
	if gs.Phase != PhaseSetup {
		t.Errorf("Phase = %v, want SETUP", gs.Phase)
	}
	if gs.Wave != 1 || gs.Level != 1 || gs.XP != 0 || gs.MaxXP != 100 {
		t.Errorf("unexpected progression: wave=%d level=%d xp=%d/%d", gs.Wave, gs.Level, gs.XP, gs.MaxXP)
	}
	if gs.Scrap != config.StartScrap {
		t.Errorf("Scrap = %d, want %d", gs.Scrap, config.StartScrap)
	}
}

func TestGainXP(t *testing.T) {
	tests := []struct {
		name       string
		xp, maxXP  int
		gain       int
		wantXP     int
		wantMax    int
		wantLevels int
		wantPhase  Phase
	}{
		{"未达到阈值", 10, 100, 20, 30, 100, 0, PhasePlay},
		{"恰好升级", 90, 100, 20, 10, 120, 1, PhaseLevelUp},
		{"刚好满值", 0, 100, 100, 0, 120, 1, PhaseLevelUp},
		{"连升两级", 0, 100, 230, 10, 144, 2, PhaseLevelUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			gs.Phase = PhasePlay
			gs.XP = tt.xp
			gs.MaxXP = tt.maxXP

			levels := gs.GainXP(tt.gain)
			if levels != tt.wantLevels {
				t.Errorf("levels = %d, want %d", levels, tt.wantLevels)
			}
			if gs.XP != tt.wantXP || gs.MaxXP != tt.wantMax {
				t.Errorf("xp = %d/%d, want %d/%d", gs.XP, gs.MaxXP, tt.wantXP, tt.wantMax)
			}
			if gs.Level != 1+tt.wantLevels {
				t.Errorf("level = %d, want %d", gs.Level, 1+tt.wantLevels)
			}
			if gs.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", gs.Phase, tt.wantPhase)
			}
		})
	}
}

func TestSpendScrap(t *testing.T) {
	gs := NewGameState()
	gs.Scrap = 30

	if gs.SpendScrap(40) {
		t.Fatal("SpendScrap(40) should fail with 30 scrap")
	}
	if gs.Scrap != 30 {
		t.Errorf("scrap changed on failed spend: %d", gs.Scrap)
	}
	if !gs.SpendScrap(30) || gs.Scrap != 0 {
		t.Errorf("SpendScrap(30) should succeed, scrap = %d", gs.Scrap)
	}
}

func TestSpawnRate(t *testing.T) {
	tests := []struct {
		name string
		base int
		wave int
		want int
	}{
		{"第一波", 180, 1, 175},
		{"第十波", 180, 10, 130},
		{"下限", 180, 100, config.SpawnRateFloor},
		{"简单难度", 240, 2, 230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			gs.SpawnRateBase = tt.base
			gs.Wave = tt.wave
			if got := gs.SpawnRate(); got != tt.want {
				t.Errorf("SpawnRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEndWave(t *testing.T) {
	gs := NewGameState()
	gs.WaveTimer = 1800
	gs.EndWave()

	if gs.Wave != 2 || gs.WaveTimer != 0 {
		t.Errorf("wave = %d timer = %d", gs.Wave, gs.WaveTimer)
	}
	if gs.DifficultyMult < 1.09 || gs.DifficultyMult > 1.11 {
		t.Errorf("DifficultyMult = %v, want 1.1", gs.DifficultyMult)
	}
	if gs.WorldRadius != config.BaseWorldRadius+config.WorldRadiusGrowth {
		t.Errorf("WorldRadius = %v", gs.WorldRadius)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseLevelUp.String() != "LEVEL_UP" || PhaseGameOver.String() != "GAME_OVER" {
		t.Error("unexpected phase names")
	}
	if Phase(99).String() != "UNKNOWN" {
		t.Error("out of range phase should be UNKNOWN")
	}
}
