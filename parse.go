package pathedit

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseNum(b []byte) (float64, int, error) {
	i := skipCommaWhitespace(b)
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, 0, fmt.Errorf("expected number")
	}
	return f, i + n, nil
}

// MustParse parses path data and panics on error. It is intended for
// statically known paths such as test fixtures.
func MustParse(s string) *Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses path data into a Path, such as "M5 0L5 10z". It accepts the
// commands M, L, H, V, Q, T, C, S and Z in absolute and relative form.
// Elliptical arcs (A) have no command kind in this engine and are rejected.
func Parse(s string) (*Path, error) {
	path := []byte(s)
	b := &PathBuilder{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // last control point for smooth curves

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", i+1)
		}
		x, y := b.pos.X, b.pos.Y

		var f [6]float64
		n, ok := 0, true
		switch cmd {
		case 'Z', 'z':
			n = 0
		case 'H', 'h', 'V', 'v':
			n = 1
		case 'M', 'm', 'L', 'l', 'T', 't':
			n = 2
		case 'Q', 'q', 'S', 's':
			n = 4
		case 'C', 'c':
			n = 6
		case 'A', 'a':
			return nil, fmt.Errorf("bad path: arcs are not supported at position %d", i)
		default:
			ok = false
		}
		if !ok {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			num, m, err := parseNum(path[i:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v for command '%c' at position %d", err, cmd, i+1)
			}
			f[j] = num
			i += m
		}

		switch cmd {
		case 'M', 'm':
			if cmd == 'm' {
				f[0] += x
				f[1] += y
			}
			b.MoveTo(f[0], f[1])
		case 'Z', 'z':
			b.Close()
		case 'L', 'l':
			if cmd == 'l' {
				f[0] += x
				f[1] += y
			}
			b.LineTo(f[0], f[1])
		case 'H', 'h':
			if cmd == 'h' {
				f[0] += x
			}
			b.LineTo(f[0], y)
		case 'V', 'v':
			if cmd == 'v' {
				f[0] += y
			}
			b.LineTo(x, f[0])
		case 'Q', 'q':
			if cmd == 'q' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
			}
			b.QuadTo(f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		case 'T', 't':
			if cmd == 't' {
				f[0] += x
				f[1] += y
			}
			cx, cy := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx, cy = 2*x-cpx, 2*y-cpy
			}
			b.QuadTo(cx, cy, f[0], f[1])
			cpx, cpy = cx, cy
		case 'C', 'c':
			if cmd == 'c' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
				f[4] += x
				f[5] += y
			}
			b.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cpx, cpy = f[2], f[3]
		case 'S', 's':
			if cmd == 's' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
			}
			cx, cy := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cx, cy = 2*x-cpx, 2*y-cpy
			}
			b.CubeTo(cx, cy, f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		}
		prevCmd = cmd
	}
	return b.Build(), nil
}
