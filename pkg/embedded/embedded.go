// Package embedded 提供嵌入资源的统一访问接口
//
// 嵌入的文件系统以 data/ 目录为根（见 data 包），
// 本包提供包装函数，让 main 包和各个 cmd 用 "data/..." 路径读取资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gonewx/pong/pkg/config"
)

// DefaultConfigPath 内置默认游戏配置
const DefaultConfigPath = "data/pong.yaml"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置嵌入的文件系统，data 以 data/ 目录为根
// 必须在 main() 开始时、任何资源读取之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取嵌入文件内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	name, ok := strings.CutPrefix(path, "data/")
	if !ok {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return fs.ReadFile(dataFS, name)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	_, err := ReadFile(path)
	return err == nil
}

// LoadGameConfig 读取游戏配置
//
// path 非空时读取该文件，否则使用内置的 data/pong.yaml。
// 所有前端都经过这里，保证默认配置只有一份来源。
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read default game config: %w", err)
	}
	return config.ParseGameConfig(data)
}
