// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms.
// [XX YX]
// [XY YY]
// [X0 Y0]
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a [Matrix2] 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a [Matrix2] 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a [Matrix2] 2D matrix with given rotation, specified in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// IsIdentity returns true if it is an identity matrix
func (a Matrix2) IsIdentity() bool {
	return a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1 && a.X0 == 0 && a.Y0 == 0
}

// Mul returns a*b
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Translate returns a*Translate2D(x, y)
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a*Scale2D(x, y)
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a*Rotate2D(angle)
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Pos returns the translation component of the matrix.
func (a Matrix2) Pos() Vector2 {
	return Vec2(a.X0, a.Y0)
}

// SetPos sets the translation component of the matrix.
func (a *Matrix2) SetPos(pos Vector2) {
	a.X0 = pos.X
	a.Y0 = pos.Y
}

// ExtractRot extracts the rotation component from a given matrix
func (a Matrix2) ExtractRot() float32 {
	return Atan2(-a.XY, a.XX)
}

// ExtractScale extracts the scaling factors from a given matrix
func (a Matrix2) ExtractScale() (scx, scy float32) {
	rot := a.ExtractRot()
	tx := a.Rotate(-rot)
	scxv := tx.MulVector2AsVector(Vec2(1, 0))
	scyv := tx.MulVector2AsVector(Vec2(0, 1))
	return scxv.X, scyv.Y
}

// Inverse returns inverse of matrix, for inverting transforms
func (a Matrix2) Inverse() Matrix2 {
	det := a.XX*a.YY - a.XY*a.YX
	if det == 0 {
		return Identity2()
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: -a.YX * d,
		XY: -a.XY * d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// String returns the SVG transform attribute form of the matrix,
// or "" for the identity.
func (a Matrix2) String() string {
	switch {
	case a.IsIdentity():
		return ""
	case a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1:
		return fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString processes the standard SVG-style transform strings
// "matrix(...)" and "translate(...)", or "none" for the identity.
func (a *Matrix2) SetString(str string) error {
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		*a = Identity2()
		return nil
	}
	op, args, ok := strings.Cut(str, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return fmt.Errorf("math32.Matrix2.SetString: invalid transform %q", str)
	}
	fields := strings.FieldsFunc(strings.TrimSuffix(args, ")"), func(r rune) bool {
		return r == ',' || r == ' '
	})
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		vals[i] = float32(v)
	}
	switch {
	case strings.TrimSpace(op) == "matrix" && len(vals) == 6:
		*a = Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}
	case strings.TrimSpace(op) == "translate" && len(vals) == 2:
		*a = Translate2D(vals[0], vals[1])
	default:
		return fmt.Errorf("math32.Matrix2.SetString: unsupported transform %q", str)
	}
	return nil
}
