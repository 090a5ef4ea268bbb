package wmapro

import (
	"github.com/llehouerou/go-wmapro/internal/tables"
	"github.com/llehouerou/go-wmapro/internal/vlc"
)

// Decode tables shared by all decoder instances. vlc.Table is immutable after
// construction.
var (
	sfVLC   = vlc.New(tables.ScaleHuffBits[:], tables.ScaleHuffCodes[:])     // scale factor DPCM deltas
	sfRLVLC = vlc.New(tables.ScaleRLHuffBits[:], tables.ScaleRLHuffCodes[:]) // scale factor run length refinement
	vec4VLC = vlc.New(tables.Vec4HuffBits[:], tables.Vec4HuffCodes[:])       // 4 coefficients per symbol
	vec2VLC = vlc.New(tables.Vec2HuffBits[:], tables.Vec2HuffCodes[:])       // 2 coefficients per symbol
	vec1VLC = vlc.New(tables.Vec1HuffBits[:], tables.Vec1HuffCodes[:])       // 1 coefficient per symbol

	coefVLC = [2]*vlc.Table{
		vlc.New(tables.Coef0HuffBits[:], tables.Coef0HuffCodes[:]),
		vlc.New(tables.Coef1HuffBits[:], tables.Coef1HuffCodes[:]),
	}
)

// Escape symbols are the highest symbol of the respective table.
const (
	vec4Escape = len(tables.Vec4HuffBits) - 1
	vec2Escape = len(tables.Vec2HuffBits) - 1
	vec1Escape = len(tables.Vec1HuffBits) - 1
)
