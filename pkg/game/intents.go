package game

// Intents 一帧内的语义输入
//
// 移动类字段表示按键是否按住；Confirm、Quit、ToggleAI 是单次事件，
// 只在按下的那一帧为 true。物理按键到意图的映射由输入层负责。
type Intents struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	Confirm  bool
	Quit     bool
	ToggleAI bool
}
