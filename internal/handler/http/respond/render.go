package respond

import (
	"fmt"
	"net/http"

	"back-office/internal/domain/entity"
)

// Render writes a presenter's output: HTML as a page, JSON as a document.
// Any other variant is a programming error and answers 500.
func Render(w http.ResponseWriter, r *http.Request, code int, out entity.RenderOutput) {
	switch v := out.(type) {
	case entity.HTML:
		HTML(w, code, string(v))
	case entity.JSON:
		JSON(w, code, v.Value)
	default:
		SafeError(w, r, http.StatusInternalServerError, fmt.Errorf("unexpected render output %T", out))
	}
}
