package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrNoAudioContext 无头模式下请求加载音频
var ErrNoAudioContext = errors.New("no audio context")

// placeholderColor 贴图缺失时占位图的颜色
var placeholderColor = color.RGBA{R: 200, G: 40, B: 160, A: 200}

// ProjectileImage 投射物贴图及其逻辑尺寸
type ProjectileImage struct {
	Texture       *ebiten.Image
	Width, Height float64
}

// ResourceManager is responsible for centralized management of game resources.
// It loads and caches images, sound effects and sprite sheets so that each
// file is read at most once.
//
// A headless ResourceManager never creates GPU images: sprite sheets keep
// their cell geometry but have a nil Texture. Headless simulation and tests
// use this mode.
//
// This implementation is NOT thread-safe; all loading happens on the game
// goroutine before the first frame.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context
	headless     bool

	sheets      map[string]*components.SpriteSheet // sheet id -> SpriteSheet
	projectiles map[string]ProjectileImage
	config      *config.SpriteSheetConfig
}

// NewResourceManager creates a ResourceManager backed by real GPU images.
//
// Parameters:
//   - audioContext: the global audio context, or nil to disable sound loading.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		sheets:       make(map[string]*components.SpriteSheet),
		projectiles:  make(map[string]ProjectileImage),
	}
}

// NewHeadlessResourceManager creates a ResourceManager that only tracks
// sprite geometry.
func NewHeadlessResourceManager() *ResourceManager {
	rm := NewResourceManager(nil)
	rm.headless = true
	return rm
}

// IsHeadless reports whether textures are skipped.
func (rm *ResourceManager) IsHeadless() bool {
	return rm.headless
}

// LoadImage loads an image file from the specified path and caches it.
// Supported formats: PNG and JPEG.
//
// Returns an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load sound effect %s: %w", path, ErrNoAudioContext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	defer file.Close()

	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoded, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadSpriteSheets builds every sprite sheet and projectile image described
// by cfg. Missing image files are replaced by a flat placeholder of the
// atlas size so the arena stays playable without art assets.
//
// Parameters:
//   - cfg: the parsed sprite sheet configuration.
//   - defaultCellDuration: frame duration (ms) for sheets that do not set one.
func (rm *ResourceManager) LoadSpriteSheets(cfg *config.SpriteSheetConfig, defaultCellDuration float64) error {
	if cfg == nil {
		return fmt.Errorf("failed to load sprite sheets: nil config")
	}
	rm.config = cfg

	ids := make([]string, 0, len(cfg.Sheets))
	for id := range cfg.Sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		sheet, err := rm.buildSheet(id, cfg.Sheets[id], defaultCellDuration)
		if err != nil {
			return fmt.Errorf("failed to load sprite sheet %s: %w", id, err)
		}
		rm.sheets[id] = sheet
	}

	for name, def := range cfg.Projectiles {
		rm.projectiles[name] = ProjectileImage{
			Texture: rm.textureOrPlaceholder(def.Image, int(def.Width), int(def.Height)),
			Width:   def.Width,
			Height:  def.Height,
		}
	}

	log.Printf("[ResourceManager] Loaded %d sprite sheets, %d projectile images (headless=%v)",
		len(rm.sheets), len(rm.projectiles), rm.headless)
	return nil
}

func (rm *ResourceManager) buildSheet(id string, def config.SheetDef, defaultCellDuration float64) (*components.SpriteSheet, error) {
	cellDefs := def.ExpandCells()
	if len(cellDefs) == 0 {
		return nil, fmt.Errorf("sheet has no cells")
	}

	sheet := &components.SpriteSheet{
		ID:           id,
		Cells:        make([]components.CellBounds, 0, len(cellDefs)),
		CellDuration: defaultCellDuration,
	}
	totalWidth := 0
	for _, c := range cellDefs {
		sheet.Cells = append(sheet.Cells, components.CellBounds{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height})
		sheet.AtlasWidth = max(sheet.AtlasWidth, c.X+c.Width)
		sheet.AtlasHeight = max(sheet.AtlasHeight, c.Y+c.Height)
		sheet.MaxCellWidth = max(sheet.MaxCellWidth, c.Width)
		sheet.MaxCellHeight = max(sheet.MaxCellHeight, c.Height)
		totalWidth += c.Width
	}

	if def.CellDuration != nil {
		sheet.CellDuration = *def.CellDuration
	}
	if def.AnchorX != nil {
		sheet.AnchorX = *def.AnchorX
	} else {
		sheet.AnchorX = float64(totalWidth) / float64(len(cellDefs)) / 2
	}

	sheet.Texture = rm.textureOrPlaceholder(def.Image, sheet.AtlasWidth, sheet.AtlasHeight)
	return sheet, nil
}

// textureOrPlaceholder 加载贴图，失败时生成占位图；无头模式返回 nil
func (rm *ResourceManager) textureOrPlaceholder(path string, width, height int) *ebiten.Image {
	if rm.headless {
		return nil
	}
	if path != "" {
		img, err := rm.LoadImage(path)
		if err == nil {
			return img
		}
		log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	placeholder := ebiten.NewImage(width, height)
	placeholder.Fill(placeholderColor)
	return placeholder
}

// SpriteSheet 按ID获取精灵图
func (rm *ResourceManager) SpriteSheet(id string) *components.SpriteSheet {
	return rm.sheets[id]
}

// EnemySheets 返回某一角色种类全部阶段的精灵图
func (rm *ResourceManager) EnemySheets(kind components.EnemyKind) (components.EnemySpriteSheets, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("sprite sheets not loaded")
	}
	phases, ok := rm.config.Enemies[kind.String()]
	if !ok {
		return nil, fmt.Errorf("no sprite sheets for enemy %s", kind)
	}

	sheets := make(components.EnemySpriteSheets)
	for _, phase := range components.PhasesFor(kind) {
		id, ok := phases[phase.String()]
		if !ok {
			return nil, fmt.Errorf("enemy %s has no %s sheet", kind, phase)
		}
		sheets[phase] = rm.sheets[id]
	}
	return sheets, nil
}

// LauncherSheet 返回发射台精灵图
func (rm *ResourceManager) LauncherSheet() *components.SpriteSheet {
	if rm.config == nil {
		return nil
	}
	return rm.sheets[rm.config.Launcher]
}

// ExplosionSheet 返回爆炸精灵图
func (rm *ResourceManager) ExplosionSheet() *components.SpriteSheet {
	if rm.config == nil {
		return nil
	}
	return rm.sheets[rm.config.Explosion]
}

// Projectile 返回投射物贴图（bullet/rocketBad/rocketGood）
func (rm *ResourceManager) Projectile(name string) ProjectileImage {
	return rm.projectiles[name]
}

// SoundPath 返回音效ID对应的文件路径
func (rm *ResourceManager) SoundPath(soundID string) (string, bool) {
	if rm.config == nil {
		return "", false
	}
	path, ok := rm.config.Sounds[soundID]
	return path, ok
}
