package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's rectangle in world space. World space is y-up,
// so X,Y is the bottom-left corner.
type ObjectData struct {
	*resolv.Object
}

// Right is the x of the rectangle's right edge.
func (o ObjectData) Right() float64 {
	return o.X + o.W
}

// Top is the y of the rectangle's top edge.
func (o ObjectData) Top() float64 {
	return o.Y + o.H
}

var Object = donburi.NewComponentType[ObjectData]()
