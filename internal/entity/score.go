package entity

// Result names the side that took a finished game.
type Result string

const (
	ResultHuman Result = "human"
	ResultBot   Result = "bot"
	ResultTie   Result = "tie"
)

func (that Result) IsValid() bool {
	return that == ResultHuman || that == ResultBot || that == ResultTie
}

// Message is the line shown to the player when a game ends.
func (that Result) Message() string {
	switch that {
	case ResultHuman:
		return "You win!"
	case ResultBot:
		return "Computer wins!"
	default:
		return "It's a tie!"
	}
}

// Score is the running tally of finished games for one player.
type Score struct {
	Human int `json:"human"`
	Bot   int `json:"bot"`
	Tie   int `json:"tie"`
}

func (that *Score) Add(result Result) {
	switch result {
	case ResultHuman:
		that.Human++
	case ResultBot:
		that.Bot++
	case ResultTie:
		that.Tie++
	}
}

func (that *Score) Total() int {
	return that.Human + that.Bot + that.Tie
}
