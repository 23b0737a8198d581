package domain

type ClientMessage struct {
	Type        string `json:"type"`
	Difficulty  string `json:"difficulty,omitempty"`
	EngineFirst bool   `json:"engineFirst,omitempty"`
	Column      int    `json:"column"`
}

type ServerMessage struct {
	Type        string  `json:"type"`
	Message     string  `json:"message,omitempty"`
	GameID      string  `json:"gameId,omitempty"`
	Opponent    string  `json:"opponent,omitempty"`
	YourPlayer  int     `json:"yourPlayer,omitempty"`
	CurrentTurn int     `json:"currentTurn,omitempty"`
	Column      int     `json:"column"`
	Row         int     `json:"row"`
	Player      int     `json:"player,omitempty"`
	Board       [][]int `json:"board,omitempty"`
	NextTurn    int     `json:"nextTurn,omitempty"`
	Winner      string  `json:"winner,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Value       *int    `json:"value,omitempty"`
}
