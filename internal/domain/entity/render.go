package entity

// RenderOutput is what a presenter produces. It is a closed sum type with two
// variants, HTML and JSON; switch on the concrete type to consume it.
//
//	switch out := output.(type) {
//	case entity.HTML:
//	case entity.JSON:
//	}
type RenderOutput interface {
	isRenderOutput()
}

// HTML is a rendered HTML document.
type HTML string

// JSON is a structured value ready to be encoded as a JSON document.
type JSON struct {
	Value any
}

func (HTML) isRenderOutput() {}
func (JSON) isRenderOutput() {}
