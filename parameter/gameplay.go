package parameter

// Play field
const (
	FieldWidth  = 400.0
	FieldHeight = 600.0
)

// Spawn
const (
	// SpawnY is the fixed starting height of a dropped circle
	SpawnY = 50.0

	// SpawnTierCount limits player drops to the lowest tiers, only merges produce larger ones
	SpawnTierCount = 4
)

// Scoring
const (
	// MergeReward is added to the score for every merge that produces a new circle
	MergeReward = 10

	// HighScoreKey is the fixed key the high score is persisted under
	HighScoreKey = "highScore"

	// HighScoreFile is the default high score file name under the user config dir
	HighScoreFile = "highscore.yaml"
)
