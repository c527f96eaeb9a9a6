package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("mine count cannot be negative, got %d", p.MineCount)
	}
	if p.MineCount >= p.Width*p.Height {
		return fmt.Errorf("too many mines: %d on a %dx%d board (max %d)",
			p.MineCount, p.Width, p.Height, p.Width*p.Height-1)
	}
	return nil
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
