package entity

import "github.com/lixenwraith/grid-shooter/constants"

// Glyph sets are copied per entity so a shape can never be shared between two entities

func playerShape() [][]rune {
	return [][]rune{
		{' ', '▐', '▌', ' '},
		{' ', '█', '█', ' '},
		{' ', '▐', '▌', ' '},
		{'▐', '█', '█', '▌'},
	}
}

func enemyShape() [][]rune {
	return [][]rune{
		{'▐', '█', '█', '▌'},
		{'█', '▐', '▌', '█'},
		{'█', '█', '█', '█'},
		{'▌', '▌', '▐', '▐'},
	}
}

func projectileShape() [][]rune {
	return [][]rune{
		{constants.ProjectileChar},
	}
}
