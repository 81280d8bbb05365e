package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxworld/internal/profiling"
)

// raymarchSteps bounds the traversal so rays into the void terminate.
const raymarchSteps = 250

// RayHit describes the first solid block a ray intersected and which of its
// faces was struck. Face is FaceNone when the block is fully enclosed.
type RayHit struct {
	Pos  [3]int
	Face Face
}

// Raymarch steps from origin along direction in increments of direction/10
// (the direction is not renormalized, so step size scales with its length)
// and reports the first non-air block found, together with the struck face.
// The second result is false when the step budget runs out without a hit.
func (w *World) Raymarch(origin, direction mgl32.Vec3) (RayHit, bool) {
	defer profiling.Track("world.Raymarch")()

	step := direction.Mul(1.0 / 10.0)
	pos := origin

	for i := 0; i < raymarchSteps; i++ {
		pos = pos.Add(step)
		x := roundToInt(pos.X())
		y := roundToInt(pos.Y())
		z := roundToInt(pos.Z())

		block, ok := w.BlockAt(x, y, z)
		if !ok || block == BlockTypeAir {
			continue
		}

		// Approach direction: from the last position before the hit back
		// toward the ray's true origin.
		approach := origin.Sub(pos.Sub(step)).Normalize()
		face := w.resolveFace(x, y, z, approach)
		return RayHit{Pos: [3]int{x, y, z}, Face: face}, true
	}

	return RayHit{}, false
}

// resolveFace determines which face of the block at (x,y,z) was struck.
// Axes are tried in x, y, z order; a later axis takes over only when its
// approach component dominates the current best and its neighbor on the
// approach side is air.
func (w *World) resolveFace(x, y, z int, approach mgl32.Vec3) Face {
	absX := abs32(approach.X())
	absY := abs32(approach.Y())
	absZ := abs32(approach.Z())

	face := FaceNone
	faceIsX := false

	if w.IsAir(x+signum(approach.X()), y, z) {
		if approach.X() > 0 {
			face = FaceRight
		} else {
			face = FaceLeft
		}
		faceIsX = true
	}

	if face == FaceNone || absY > absX {
		if w.IsAir(x, y+signum(approach.Y()), z) {
			if approach.Y() > 0 {
				face = FaceTop
			} else {
				face = FaceBottom
			}
			faceIsX = false
		}
	}

	bestAbs := absY
	if faceIsX {
		bestAbs = absX
	}
	if face == FaceNone || absZ > bestAbs {
		if w.IsAir(x, y, z+signum(approach.Z())) {
			if approach.Z() > 0 {
				face = FaceBack
			} else {
				face = FaceFront
			}
		}
	}

	return face
}

func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}

func signum(v float32) int {
	if v > 0 {
		return 1
	}
	return -1
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
