package sqlite

type playerTableModel struct {
	Season   string `db:"season"`
	Gameweek int    `db:"gameweek"`
	ID       int    `db:"id"`
	Team     int    `db:"team"`
	Name     string `db:"name"`
	Position string `db:"position"`
	NowCost  int    `db:"now_cost"`
}

type predictionTableModel struct {
	Season   string  `db:"season"`
	Gameweek int     `db:"gameweek"`
	PlayerID int     `db:"player_id"`
	Points   float64 `db:"points"`
}

type resultTableModel struct {
	Season   string  `db:"season"`
	Gameweek int     `db:"gameweek"`
	PlayerID int     `db:"player_id"`
	Points   float64 `db:"points"`
	Minutes  float64 `db:"minutes"`
}

type trialTableModel struct {
	ID        string  `db:"id"`
	CreatedAt string  `db:"created_at"`
	Params    string  `db:"params"`
	Score     float64 `db:"score"`
}
