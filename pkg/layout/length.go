package layout

import (
	"fmt"
	"math"
)

// LengthKind selects how a node sizes itself along one axis.
type LengthKind int

const (
	// LengthShrink uses the content's intrinsic size.
	LengthShrink LengthKind = iota
	// LengthFill takes all available space.
	LengthFill
	// LengthFixed uses an exact value.
	LengthFixed
)

// Length is a sizing policy along one axis.
type Length struct {
	Kind  LengthKind
	Value float64
}

// Shrink sizes to content.
var Shrink = Length{Kind: LengthShrink}

// Fill takes all available space.
var Fill = Length{Kind: LengthFill}

// Fixed returns an exact length.
func Fixed(v float64) Length {
	return Length{Kind: LengthFixed, Value: v}
}

func (l Length) resolve(intrinsic, available float64) float64 {
	switch l.Kind {
	case LengthFill:
		if math.IsInf(available, 1) {
			return intrinsic
		}
		return available
	case LengthFixed:
		return l.Value
	default:
		return intrinsic
	}
}

func (l Length) String() string {
	switch l.Kind {
	case LengthFill:
		return "fill"
	case LengthFixed:
		return fmt.Sprintf("fixed(%g)", l.Value)
	default:
		return "shrink"
	}
}

// Sizing pairs the width and height policies of a node.
type Sizing struct {
	Width  Length
	Height Length
}
