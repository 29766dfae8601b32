package state

import (
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/wherewasi/ecs/component"
)

// Version is the only format version Decode accepts.
const Version = "v0"

// ParseError is the error type for all decode failures. It carries a
// human-readable message and nothing else.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func expectedLine() *ParseError {
	return &ParseError{Message: "Expected line to be there, but it wasn't there"}
}

// Encode writes t to w in the versioned text layout described in the package
// doc. Write errors are returned as-is, possibly after a partial write; w is
// neither flushed nor closed.
func Encode(w io.Writer, t component.Transform) error {
	ew := &errWriter{w: w}

	ew.line(Version)
	ew.line("")

	ew.line("translation:")
	ew.float(t.Translation.X())
	ew.float(t.Translation.Y())
	ew.float(t.Translation.Z())
	ew.line("")

	ew.line("rotation:")
	ew.float(t.Rotation.X())
	ew.float(t.Rotation.Y())
	ew.float(t.Rotation.Z())
	ew.float(t.Rotation.W)
	ew.line("")

	ew.line("scale:")
	ew.float(t.Scale.X())
	ew.float(t.Scale.Y())
	ew.float(t.Scale.Z())

	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}

func (ew *errWriter) float(v float32) {
	// Shortest decimal that round-trips a float32.
	ew.line(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// Decode reads a Transform from lines. Decoding is strictly positional and
// all-or-nothing: the first missing line, unrecognized version, or
// unparseable float aborts with a *ParseError.
func Decode(lines LineSource) (component.Transform, error) {
	var t component.Transform

	version, err := nextLine(lines)
	if err != nil {
		return t, err
	}
	if version != Version {
		return t, &ParseError{Message: "Wrong version: " + version}
	}

	// Each block is preceded by a blank line and a label line. Both must
	// exist but their content is never checked.
	if err := skipLines(lines, 2); err != nil {
		return t, err
	}
	translation, err := nextVec3(lines)
	if err != nil {
		return t, err
	}

	if err := skipLines(lines, 2); err != nil {
		return t, err
	}
	rotation, err := nextQuat(lines)
	if err != nil {
		return t, err
	}

	if err := skipLines(lines, 2); err != nil {
		return t, err
	}
	scale, err := nextVec3(lines)
	if err != nil {
		return t, err
	}

	t.Translation = translation
	t.Rotation = rotation
	t.Scale = scale
	return t, nil
}

func nextLine(lines LineSource) (string, error) {
	line, ok := lines.Next()
	if !ok {
		if err := lines.Err(); err != nil {
			return "", &ParseError{Message: err.Error()}
		}
		return "", expectedLine()
	}
	return line, nil
}

func skipLines(lines LineSource, n int) error {
	for range n {
		if _, err := nextLine(lines); err != nil {
			return err
		}
	}
	return nil
}

func nextFloat(lines LineSource) (float32, error) {
	line, err := nextLine(lines)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 32)
	if err != nil {
		return 0, &ParseError{Message: err.Error()}
	}
	return float32(v), nil
}

func nextVec3(lines LineSource) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i := range v {
		f, err := nextFloat(lines)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func nextQuat(lines LineSource) (mgl32.Quat, error) {
	x, err := nextFloat(lines)
	if err != nil {
		return mgl32.Quat{}, err
	}
	y, err := nextFloat(lines)
	if err != nil {
		return mgl32.Quat{}, err
	}
	z, err := nextFloat(lines)
	if err != nil {
		return mgl32.Quat{}, err
	}
	w, err := nextFloat(lines)
	if err != nil {
		return mgl32.Quat{}, err
	}
	// Component order on disk is x, y, z, w. Not renormalized.
	return mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}, nil
}
