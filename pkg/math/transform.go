package math

// Transform places an object in world space: scale, then rotate, then translate.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// TransformIdentity returns a transform that leaves points unchanged.
func TransformIdentity() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// TransformFromTranslation returns an unrotated, unscaled transform moved by t.
func TransformFromTranslation(t Vec3) Transform {
	tr := TransformIdentity()
	tr.Translation = t
	return tr
}

// Matrix returns Translation * Rotation * Scale.
func (t Transform) Matrix() Mat4 {
	m := Translate(t.Translation.X, t.Translation.Y, t.Translation.Z)
	m = m.Mul(t.Rotation.ToMat4())
	return m.Mul(Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// TransformPoint maps a local point into the transform's parent space.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotation.Rotate(p.Mul(t.Scale)).Add(t.Translation)
}

// Mul composes t with a child transform, so that
// t.Mul(child).TransformPoint(p) == t.TransformPoint(child.TransformPoint(p))
// for uniform scales.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.TransformPoint(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation),
		Scale:       t.Scale.Mul(child.Scale),
	}
}
