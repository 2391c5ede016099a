// Package data 内置数据文件
//
// //go:embed 只能嵌入本包目录下的文件，所以嵌入声明放在 data/ 目录里，
// 窗口版和各个 cmd 都从这里取同一份默认配置。
package data

import "embed"

//go:embed pong.yaml
var FS embed.FS
