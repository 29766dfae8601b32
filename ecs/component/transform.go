package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is an entity's pose in 3D space: translation, rotation, scale.
// The rotation quaternion is kept exactly as set; nothing here renormalizes
// it or checks it for unit length. Scale may be negative or non-uniform.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns the no-op pose: zero translation, identity
// rotation, unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

var TransformComponent = NewComponent[Transform]()
