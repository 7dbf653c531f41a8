package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/slopes/sat"
)

type ObjectData struct {
	Body *sat.Body
}

var Object = donburi.NewComponentType[ObjectData]()
