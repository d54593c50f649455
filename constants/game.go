package constants

// Grid
const (
	// TileSize is the logical pixel size of a grid cell, particle physics run in this space
	TileSize = 20

	// DefaultCols and DefaultRows give a 600x600 logical pixel board
	DefaultCols = 30
	DefaultRows = 30

	// MinGridDim is the smallest accepted grid dimension
	MinGridDim = 10

	// CellWidth is the number of terminal columns per grid cell (terminal cells are ~1:2)
	CellWidth = 2

	// StartLength is the initial snake length
	StartLength = 3
)

// Storage
const (
	// HighScoreKey is the single durable key-value slot holding the best score
	HighScoreKey = "snake_high_score_v3"

	// HighScoreSection groups the score key inside the storage file
	HighScoreSection = "scores"
)
