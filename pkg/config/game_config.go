package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏参数配置
//
// 默认值与经典规则一致：900x600 场地，12x100 球拍，16x16 球，
// 先得 7 分者胜。配置文件中未出现的字段保留默认值。
//
// 配置文件位置: data/pong.yaml
type GameConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	AI     AIConfig     `yaml:"ai"`
	Rules  RulesConfig  `yaml:"rules"`
	Keys   KeyBindings  `yaml:"keys"`
}

// ScreenConfig 场地与帧率
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// PaddleConfig 球拍参数
type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`  // 玩家球拍速度（像素/tick）
	Margin int `yaml:"margin"` // 球拍与左右边界的距离
}

// BallConfig 球参数
type BallConfig struct {
	Size     int     `yaml:"size"`
	Speed    float64 `yaml:"speed"`    // 基础速度（像素/tick）
	ServeMin float64 `yaml:"serveMin"` // 发球竖直速度倍率下限
	ServeMax float64 `yaml:"serveMax"` // 发球竖直速度倍率上限
}

// AIConfig 电脑对手参数
type AIConfig struct {
	Speed    int `yaml:"speed"`    // 必须小于 PaddleConfig.Speed
	DeadZone int `yaml:"deadZone"` // 死区半宽
}

// RulesConfig 比赛规则
type RulesConfig struct {
	WinningScore     int     `yaml:"winningScore"`
	DeflectionFactor float64 `yaml:"deflectionFactor"`
	ToggleDebounceMs int     `yaml:"toggleDebounceMs"` // AI 开关防抖时间
}

// KeyBindings 按键绑定，值为 ebiten 按键名（如 "W", "ArrowUp", "Space"）
type KeyBindings struct {
	LeftUp    []string `yaml:"leftUp"`
	LeftDown  []string `yaml:"leftDown"`
	RightUp   []string `yaml:"rightUp"`
	RightDown []string `yaml:"rightDown"`
	Confirm   []string `yaml:"confirm"`
	Quit      []string `yaml:"quit"`
	ToggleAI  []string `yaml:"toggleAI"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  900,
			Height: 600,
			FPS:    60,
			Title:  "Pong",
		},
		Paddle: PaddleConfig{
			Width:  12,
			Height: 100,
			Speed:  6,
			Margin: 30,
		},
		Ball: BallConfig{
			Size:     16,
			Speed:    5,
			ServeMin: 0.4,
			ServeMax: 1.0,
		},
		AI: AIConfig{
			Speed:    4,
			DeadZone: 5,
		},
		Rules: RulesConfig{
			WinningScore:     7,
			DeflectionFactor: 2,
			ToggleDebounceMs: 160,
		},
		Keys: KeyBindings{
			LeftUp:    []string{"W"},
			LeftDown:  []string{"S"},
			RightUp:   []string{"ArrowUp"},
			RightDown: []string{"ArrowDown"},
			Confirm:   []string{"Space", "Enter"},
			Quit:      []string{"Escape"},
			ToggleAI:  []string{"A"},
		},
	}
}

// LoadGameConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/pong.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置，未出现的字段使用默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 尺寸为正，球拍和球能放进场地
//   - AI 速度严格小于玩家速度
//   - 胜利分数、帧率为正，防抖时间非负
//   - 发球倍率范围 0 < min <= max
//   - 每个动作至少绑定一个按键
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Screen.FPS)
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("paddle size must be positive, got %dx%d", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Height > c.Screen.Height {
		return fmt.Errorf("paddle height %d exceeds screen height %d", c.Paddle.Height, c.Screen.Height)
	}
	if c.Paddle.Margin < 0 || 2*(c.Paddle.Margin+c.Paddle.Width) >= c.Screen.Width {
		return fmt.Errorf("paddle margin %d does not fit screen width %d", c.Paddle.Margin, c.Screen.Width)
	}
	if c.Paddle.Speed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %d", c.Paddle.Speed)
	}

	if c.Ball.Size <= 0 || c.Ball.Size >= c.Screen.Height || c.Ball.Size >= c.Screen.Width {
		return fmt.Errorf("ball size %d does not fit screen %dx%d", c.Ball.Size, c.Screen.Width, c.Screen.Height)
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %.2f", c.Ball.Speed)
	}
	if c.Ball.ServeMin <= 0 || c.Ball.ServeMin > c.Ball.ServeMax {
		return fmt.Errorf("serve range invalid: min(%.2f) max(%.2f)", c.Ball.ServeMin, c.Ball.ServeMax)
	}

	if c.AI.Speed <= 0 || c.AI.Speed >= c.Paddle.Speed {
		return fmt.Errorf("ai speed must be in (0, %d), got %d", c.Paddle.Speed, c.AI.Speed)
	}
	if c.AI.DeadZone < 0 {
		return fmt.Errorf("ai dead zone must not be negative, got %d", c.AI.DeadZone)
	}

	if c.Rules.WinningScore < 1 {
		return fmt.Errorf("winning score must be at least 1, got %d", c.Rules.WinningScore)
	}
	if c.Rules.ToggleDebounceMs < 0 {
		return fmt.Errorf("toggle debounce must not be negative, got %d", c.Rules.ToggleDebounceMs)
	}

	return c.Keys.Validate()
}

// Validate 检查每个动作至少有一个按键；按键名本身由输入层解析
func (k *KeyBindings) Validate() error {
	actions := []struct {
		name string
		keys []string
	}{
		{"leftUp", k.LeftUp},
		{"leftDown", k.LeftDown},
		{"rightUp", k.RightUp},
		{"rightDown", k.RightDown},
		{"confirm", k.Confirm},
		{"quit", k.Quit},
		{"toggleAI", k.ToggleAI},
	}
	for _, a := range actions {
		if len(a.keys) == 0 {
			return fmt.Errorf("key binding '%s' is empty", a.name)
		}
	}
	return nil
}

// ToggleDebounce 返回 AI 开关防抖时长
func (c *GameConfig) ToggleDebounce() time.Duration {
	return time.Duration(c.Rules.ToggleDebounceMs) * time.Millisecond
}

// TickDuration 返回每帧时长
func (c *GameConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Screen.FPS)
}

// LeftPaddleX 左球拍的固定 x 坐标
func (c *GameConfig) LeftPaddleX() int {
	return c.Paddle.Margin
}

// RightPaddleX 右球拍的固定 x 坐标
func (c *GameConfig) RightPaddleX() int {
	return c.Screen.Width - c.Paddle.Margin - c.Paddle.Width
}

// PaddleStartY 球拍初始的上边缘 y 坐标（竖直居中）
func (c *GameConfig) PaddleStartY() int {
	return c.Screen.Height/2 - c.Paddle.Height/2
}
