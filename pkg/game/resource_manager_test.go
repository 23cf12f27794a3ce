package game

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
)

// createTestImage 写入一张 10x10 的蓝色 PNG
func createTestImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func loadShippedSheetConfig(t *testing.T) *config.SpriteSheetConfig {
	t.Helper()
	cfg, err := config.LoadSpriteSheetConfig("../../data/spritesheets.yaml")
	if err != nil {
		t.Fatalf("LoadSpriteSheetConfig failed: %v", err)
	}
	return cfg
}

func TestLoadImage_CachingMechanism(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_cache.png")
	createTestImage(t, path)

	rm := NewResourceManager(nil)
	img1, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("First LoadImage failed: %v", err)
	}
	if b := img1.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 10x10", b.Dx(), b.Dy())
	}

	img2, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Images are not cached - different instances returned")
	}
	if rm.GetImage(path) != img1 {
		t.Error("GetImage should return the cached instance")
	}
}

func TestLoadImage_Errors(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(invalid, []byte("not a valid png"), 0644); err != nil {
		t.Fatalf("Failed to create invalid file: %v", err)
	}
	if _, err := rm.LoadImage(invalid); err == nil {
		t.Error("Expected error for invalid image format, got nil")
	}
}

func TestLoadSoundEffect_NoAudioContext(t *testing.T) {
	rm := NewHeadlessResourceManager()
	_, err := rm.LoadSoundEffect("assets/audio/move_jump.wav")
	if !errors.Is(err, ErrNoAudioContext) {
		t.Errorf("Expected ErrNoAudioContext, got %v", err)
	}
}

func TestLoadSpriteSheets_Headless(t *testing.T) {
	rm := NewHeadlessResourceManager()
	if err := rm.LoadSpriteSheets(loadShippedSheetConfig(t), 50); err != nil {
		t.Fatalf("LoadSpriteSheets failed: %v", err)
	}

	explosion := rm.ExplosionSheet()
	if explosion == nil {
		t.Fatal("explosion sheet missing")
	}
	if explosion.Texture != nil {
		t.Error("headless sheets should have no texture")
	}
	if explosion.CellDuration != 40 {
		t.Errorf("explosion cellDuration override: got %v, want 40", explosion.CellDuration)
	}
	if explosion.MaxCellWidth != 256 || explosion.MaxCellHeight != 256 {
		t.Errorf("explosion max cell: got %dx%d", explosion.MaxCellWidth, explosion.MaxCellHeight)
	}

	launcher := rm.LauncherSheet()
	if launcher == nil || launcher.Len() != 16 {
		t.Fatalf("launcher sheet: %+v", launcher)
	}
	if launcher.CellDuration != 50 {
		t.Errorf("launcher should use the default cell duration, got %v", launcher.CellDuration)
	}

	bullet := rm.Projectile("bullet")
	if bullet.Width != 12 || bullet.Height != 40 {
		t.Errorf("bullet size: got %vx%v", bullet.Width, bullet.Height)
	}

	if path, ok := rm.SoundPath("moveJump"); !ok || path == "" {
		t.Error("moveJump sound path missing")
	}
}

func TestEnemySheets(t *testing.T) {
	rm := NewHeadlessResourceManager()
	if err := rm.LoadSpriteSheets(loadShippedSheetConfig(t), 50); err != nil {
		t.Fatalf("LoadSpriteSheets failed: %v", err)
	}

	for _, kind := range components.AllEnemyKinds {
		sheets, err := rm.EnemySheets(kind)
		if err != nil {
			t.Fatalf("EnemySheets(%s) failed: %v", kind, err)
		}
		for _, phase := range components.PhasesFor(kind) {
			if sheets[phase].Len() == 0 {
				t.Errorf("%s/%s sheet has no cells", kind, phase)
			}
		}
	}

	two, _ := rm.EnemySheets(components.EnemyKindTwo)
	if two[components.PhaseShooting].Len() <= 10 {
		t.Error("two/shooting must be long enough to reach the bullet frame")
	}
	four, _ := rm.EnemySheets(components.EnemyKindFour)
	if four[components.PhaseShoot].Len() <= 20 {
		t.Error("four/shoot must be long enough to reach the launch frame")
	}
}

func TestEnemySheets_NotLoaded(t *testing.T) {
	rm := NewHeadlessResourceManager()
	if _, err := rm.EnemySheets(components.EnemyKindOne); err == nil {
		t.Error("Expected error before LoadSpriteSheets")
	}
	if rm.LauncherSheet() != nil || rm.ExplosionSheet() != nil {
		t.Error("sheets should be nil before loading")
	}
}

func TestDefaultAnchorX(t *testing.T) {
	rm := NewHeadlessResourceManager()
	cfg := &config.SpriteSheetConfig{
		Sheets: map[string]config.SheetDef{
			"s": {Cells: []config.CellDef{{Width: 100, Height: 10}, {X: 100, Width: 60, Height: 10}}},
		},
	}
	if err := rm.LoadSpriteSheets(cfg, 50); err != nil {
		t.Fatalf("LoadSpriteSheets failed: %v", err)
	}
	s := rm.SpriteSheet("s")
	if s.AnchorX != 40 {
		t.Errorf("AnchorX: got %v, want 40", s.AnchorX)
	}
	if s.AtlasWidth != 160 || s.AtlasHeight != 10 {
		t.Errorf("atlas: got %dx%d, want 160x10", s.AtlasWidth, s.AtlasHeight)
	}
}
