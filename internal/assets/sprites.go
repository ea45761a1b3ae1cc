package assets

// CellSize is the edge length of one sprite atlas cell.
const CellSize = 10

// Sprite identifies a cell in the "img" atlas.
type Sprite int

const (
	SpriteGround Sprite = iota
	SpriteHazard
	SpriteBoost
	SpritePlayer
	SpriteHeart
	SpriteDigit0
)

// Digit returns the sprite for decimal digit d.
func Digit(d int) Sprite {
	return SpriteDigit0 + Sprite(d%10)
}

// Atlas layout: terrain, player and heart on cell row 0 (the bottom row of
// the image), digits 0-9 on cell row 1.
const (
	atlasCols = 10
	atlasRows = 2
)

// AtlasSize returns the minimum size of the sprite atlas in pixels.
func AtlasSize() (w, h int) {
	return atlasCols * CellSize, atlasRows * CellSize
}

// Cell returns the atlas cell column and row of a sprite.
func Cell(s Sprite) (col, row int) {
	if s >= SpriteDigit0 {
		return int(s - SpriteDigit0), 1
	}
	return int(s), 0
}
