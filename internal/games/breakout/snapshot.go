package breakout

// Snapshot contains the complete game state for replay summaries and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64 `yaml:"tick"`
	Status   string `yaml:"status"`
	Outcome  string `yaml:"outcome"`
	Quit     bool   `yaml:"quit"`
	PaddleX  int    `yaml:"paddle_x"`
	PaddleDX int    `yaml:"paddle_dx"`
	BallX    int    `yaml:"ball_x"`
	BallY    int    `yaml:"ball_y"`
	BallDX   int    `yaml:"ball_dx"`
	BallDY   int    `yaml:"ball_dy"`

	BricksRemaining int `yaml:"bricks_remaining"`

	// Brick visibility, flattened: row*Cols + col = index, 1 = visible
	BrickData []int `yaml:"-"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, Rows*Cols)
	for row := range Rows {
		for col := range Cols {
			if g.bricks[row][col].Visible {
				brickData[row*Cols+col] = 1
			}
		}
	}

	return Snapshot{
		Tick:            g.tick,
		Status:          g.status.String(),
		Outcome:         g.outcome.String(),
		Quit:            g.quit,
		PaddleX:         g.paddle.Rect.X,
		PaddleDX:        g.paddle.DX,
		BallX:           g.ball.Rect.X,
		BallY:           g.ball.Rect.Y,
		BallDX:          g.ball.DX,
		BallDY:          g.ball.DY,
		BricksRemaining: g.bricks.CountVisible(),
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleDX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, s := range []string{snap.Status, snap.Outcome} {
		for i := 0; i < len(s); i++ {
			h = h*31 + uint64(s[i])
		}
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
