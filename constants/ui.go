package constants

// Text shown by the renderer
const (
	Title       = "SNAKE.IO"
	Attribution = "snakeio terminal edition"

	ReasonCollision = "GAME OVER"
	ReasonBomb      = "BOOM! Red bomb"

	TitlePrompt   = "Press ANY key to start"
	GameOverTip   = "Enter or Space: restart • M: mute"
	PauseShuffle  = "Foods shuffle and can spawn unexpectedly."
	PauseSpeeds   = "Speed: 1 = Slow   2 = Medium   3 = Fast"
	PauseControls = "Arrows/WASD • Space: Resume • Enter: Restart • M: Mute"
	TitleControls = "M: Mute/Unmute   •   [ / ]: Food wander"
)

// Panel geometry in terminal cells
const (
	PausePanelWidth     = 58
	PausePanelHeight    = 16
	GameOverPanelWidth  = 50
	GameOverPanelHeight = 12
)
