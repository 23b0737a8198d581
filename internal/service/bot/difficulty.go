package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium // Default to medium
	}
}

// Depths maps each difficulty to a search depth.
type Depths struct {
	Easy   int
	Medium int
	Hard   int
}

var DefaultDepths = Depths{Easy: 2, Medium: 4, Hard: 6}

func (d Depths) For(difficulty BotDifficulty) int {
	switch difficulty {
	case DifficultyEasy:
		return d.Easy
	case DifficultyHard:
		return d.Hard
	default:
		return d.Medium
	}
}
