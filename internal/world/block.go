package world

// BlockType identifies the material stored in a single voxel.
type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeBedrock
)

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeGrass:
		return "grass"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeStone:
		return "stone"
	case BlockTypeBedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}

// Face identifies which axis-aligned side of a unit cube a ray struck.
// FaceNone is reported for the degenerate case of a fully enclosed block.
type Face int

const (
	FaceNone Face = iota
	FaceLeft
	FaceRight
	FaceBottom
	FaceTop
	FaceFront
	FaceBack
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return "none"
	}
}
