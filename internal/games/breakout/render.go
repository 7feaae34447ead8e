package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Colors and fonts of the draw pass.
const (
	PaddleColor  = core.ColorBrightWhite
	BallColor    = core.ColorBrightWhite
	ScoreColor   = core.ColorGray
	MessageColor = core.ColorWhite
	LabelFont    = "arcade"
)

// Layout of labels, in world units.
const (
	scoreMargin       = 25  // Score label distance below the field top
	messageLift       = 120 // Message anchor distance above the field center
	scoreboardDrop    = 20  // First scoreboard row distance below the field center
	scoreboardSpacing = 30
)

// Draw renders the current view onto dst.
func (s *Session) Draw(dst core.Surface) {
	v := s.view
	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	if v.ShowPlayfield && s.round != nil {
		drawRound(dst, s.round)
	}

	core.Label{
		Text:  v.Score,
		X:     w / 2,
		Y:     h - scoreMargin,
		Color: ScoreColor,
		Font:  LabelFont,
	}.Render(dst)

	// Countdown digits sit at the center; prompts leave room for the scoreboard.
	msgY := h / 2
	if s.state != StateCountdown {
		msgY += messageLift
	}
	core.Label{
		Text:  v.Message,
		X:     w / 2,
		Y:     msgY,
		Color: MessageColor,
		Font:  LabelFont,
	}.Render(dst)

	if v.ShowScoreboard {
		for i, slot := range v.Scoreboard {
			core.Label{
				Text:  slot.Text,
				X:     w / 2,
				Y:     h/2 - scoreboardDrop - float64(i)*scoreboardSpacing,
				Color: slot.Color,
				Font:  LabelFont,
			}.Render(dst)
		}
	}
}

// drawRound renders bricks, paddle and the balls still in the field.
func drawRound(dst core.Surface, r *Round) {
	for _, b := range r.Bricks() {
		core.Rectangle{Shape: b.Shape, Fill: b.Color, Line: b.Color}.Render(dst)
	}

	p := r.Paddle()
	core.Rectangle{Shape: p.Shape, Fill: PaddleColor, Line: PaddleColor}.Render(dst)

	for _, b := range r.Balls() {
		if b.Out {
			continue
		}
		core.Ellipse{Shape: b.Shape, Fill: BallColor, Line: BallColor}.Render(dst)
	}
}
