// simulate 无窗口地运行一局对战
//
// 使用无头资源与脚本化的碰撞后端，按脚本注入按键，结束后输出被摧毁的角色与暂停模式。
//
// 用法:
//
//	go run ./cmd/simulate -frames 600 -seed 1 -script "1:enter,30:right,90:-right,120:space"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/notagame/pkg/collision"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/game"
	"github.com/decker502/notagame/pkg/input"
	"github.com/decker502/notagame/pkg/scenes"
	"github.com/decker502/notagame/pkg/systems"
)

// scriptedInput 在第 Frame 帧开始时注入的输入
type scriptedInput struct {
	Frame int
	Input input.Input
}

// parseScript 解析 "帧:按键" 列表，按键前加 "-" 表示抬起
func parseScript(script string) ([]scriptedInput, error) {
	var out []scriptedInput
	for _, item := range strings.Split(script, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		frameStr, keyStr, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid script item %q: want frame:key", item)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("invalid frame in %q", item)
		}

		if keyStr == "reset" {
			out = append(out, scriptedInput{Frame: frame, Input: input.Input{Kind: input.ResetEvent}})
			continue
		}
		up := strings.HasPrefix(keyStr, "-")
		key, ok := input.ParseKey(strings.ToLower(strings.TrimPrefix(keyStr, "-")))
		if !ok {
			return nil, fmt.Errorf("unknown key in %q", item)
		}
		in := input.KeyDown(key)
		if up {
			in = input.KeyUp(key)
		}
		out = append(out, scriptedInput{Frame: frame, Input: in})
	}
	return out, nil
}

func main() {
	frames := flag.Int("frames", 3600, "模拟的帧数")
	seed := flag.Int64("seed", 1, "随机种子")
	selectKind := flag.String("select", "", "开局选中的角色（one/two/three/four），默认取配置")
	script := flag.String("script", "1:enter", "输入脚本，逗号分隔的 帧:按键，按键前加 - 表示抬起")
	verbose := flag.Bool("verbose", false, "显示详细日志")
	latency := flag.Int("latency", 1, "碰撞查询的延迟帧数")
	hit := flag.Bool("hit", true, "碰撞查询的结果")
	configPath := flag.String("config", "data/game.yaml", "玩法配置文件")
	sheetsPath := flag.String("sheets", "data/spritesheets.yaml", "精灵图配置文件")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(os.Stdout, options{
		frames:     *frames,
		seed:       *seed,
		selectKind: *selectKind,
		script:     *script,
		latency:    *latency,
		hit:        *hit,
		configPath: *configPath,
		sheetsPath: *sheetsPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	frames     int
	seed       int64
	selectKind string
	script     string
	latency    int
	hit        bool
	configPath string
	sheetsPath string
}

func run(w io.Writer, opts options) error {
	cfg, err := config.LoadGameConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.selectKind != "" {
		cfg.SelectedEnemy = opts.selectKind
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	sheets, err := config.LoadSpriteSheetConfig(opts.sheetsPath)
	if err != nil {
		return err
	}
	inputs, err := parseScript(opts.script)
	if err != nil {
		return err
	}

	rm := game.NewHeadlessResourceManager()
	if err := rm.LoadSpriteSheets(sheets, cfg.CellDuration); err != nil {
		return err
	}

	queue := input.NewQueue()
	backend := collision.NewScriptedBackend(opts.latency, opts.hit)
	arena, err := scenes.NewArenaScene(scenes.ArenaOptions{
		Config:    cfg,
		Resources: rm,
		Backend:   backend,
		Inputs:    queue,
		Rand:      rand.New(rand.NewSource(opts.seed)),
	})
	if err != nil {
		return err
	}
	defer arena.Release()

	clock := &game.ManualClock{}
	loop := game.NewMainLoop(arena, cfg.MainLoop.TimeStep, cfg.MainLoop.MaxUpdateSteps)

	next := 0
	for frame := 0; frame < opts.frames; frame++ {
		for next < len(inputs) && inputs[next].Frame <= frame {
			queue.InsertAlways(inputs[next].Input)
			next++
		}
		arena.Controller()
		clock.Advance(cfg.MainLoop.TimeStep)
		loop.Tick(clock.Now())

		if arena.Finished() {
			break
		}
	}

	gs := arena.GameState()
	destroyed := systems.DestroyedKindNames(gs)
	issued, released := backend.Stats()
	fmt.Fprintf(w, "frames:    %d\n", gs.Frame)
	fmt.Fprintf(w, "destroyed: %s\n", strings.Join(destroyed, ","))
	fmt.Fprintf(w, "mode:      %s\n", gs.Pause.Mode)
	fmt.Fprintf(w, "queries:   %d issued, %d released\n", issued, released)
	return nil
}
