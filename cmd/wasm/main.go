//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECArith WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("ECArith", map[string]interface{}{
		"IsOnCurve":  js.FuncOf(IsOnCurve),
		"Add":        js.FuncOf(Add),
		"Double":     js.FuncOf(Double),
		"ScalarMult": js.FuncOf(ScalarMult),
		"Curves":     js.FuncOf(Curves),
	})

	<-c
}

// IsOnCurve reports whether a point lies on a curve.
// Arguments:
// 0: curve (preset name or JSON parameters)
// 1: point text
// Returns:
// bool or error string
func IsOnCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, point)"
	}
	c, err := curveArg(args[0])
	if err != nil {
		return errorString(err)
	}
	x, y, err := curves.ParseCoordinates(args[1].String())
	if err != nil {
		return errorString(err)
	}
	if x == nil {
		return true
	}
	_, err = c.NewPoint(x, y)
	return err == nil
}

// Add returns the sum of two points.
// Arguments:
// 0: curve
// 1, 2: point text
// Returns:
// point text or error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, p, q)"
	}
	c, ps, err := curveAndPoints(args[0], args[1:])
	if err != nil {
		return errorString(err)
	}
	return pointResult(c.Add(ps[0], ps[1]))
}

// Double returns twice a point.
// Arguments:
// 0: curve
// 1: point text
// Returns:
// point text or error string
func Double(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, p)"
	}
	c, ps, err := curveAndPoints(args[0], args[1:])
	if err != nil {
		return errorString(err)
	}
	return pointResult(c.Double(ps[0]))
}

// ScalarMult returns k·P.
// Arguments:
// 0: curve
// 1: decimal or 0x-prefixed scalar string (JS numbers lose precision)
// 2: point text
// Returns:
// point text or error string
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, k, p)"
	}
	k, ok := new(big.Int).SetString(args[1].String(), 0)
	if !ok {
		return errorString(ec.ErrInvalidScalar)
	}
	c, ps, err := curveAndPoints(args[0], args[2:])
	if err != nil {
		return errorString(err)
	}
	return pointResult(c.ScalarMult(k, ps[0]))
}

// Curves lists the preset names as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(curves.Names())
	return string(b)
}

// Helpers

// curveArg accepts a preset name or a JSON object such as
// {"a": "3", "b": "1", "q": "7"}.
func curveArg(v js.Value) (*curves.Curve, error) {
	s := strings.TrimSpace(v.String())
	if !strings.HasPrefix(s, "{") {
		return curves.ByName(s)
	}
	var cc config.CurveConfig
	if err := json.Unmarshal([]byte(s), &cc); err != nil {
		return nil, errors.Wrap(err, "invalid curve json")
	}
	return cc.Build()
}

func curveAndPoints(curve js.Value, points []js.Value) (*curves.Curve, []curves.Point, error) {
	c, err := curveArg(curve)
	if err != nil {
		return nil, nil, err
	}
	ps := make([]curves.Point, len(points))
	for i, v := range points {
		if ps[i], err = c.ParsePoint(v.String()); err != nil {
			return nil, nil, err
		}
	}
	return c, ps, nil
}

func pointResult(p curves.Point, err error) interface{} {
	if err != nil {
		return errorString(err)
	}
	return curves.FormatPoint(p)
}

func errorString(err error) string {
	return "error: " + err.Error()
}
