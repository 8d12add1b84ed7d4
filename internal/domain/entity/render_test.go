package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func describe(out RenderOutput) string {
	switch v := out.(type) {
	case HTML:
		return "html:" + string(v)
	case JSON:
		if s, ok := v.Value.(string); ok {
			return "json:" + s
		}
		return "json"
	default:
		return "unknown"
	}
}

func TestRenderOutput_Variants(t *testing.T) {
	assert.Equal(t, "html:<p>hi</p>", describe(HTML("<p>hi</p>")))
	assert.Equal(t, "json:hi", describe(JSON{Value: "hi"}))
	assert.Equal(t, "json", describe(JSON{Value: map[string]int{"a": 1}}))
	assert.Equal(t, "unknown", describe(nil))
}

func TestLoginProviderOutput_DefaultLogin(t *testing.T) {
	form, err := NewForm(FormConfig{ID: "login-form", Method: FormMethodPost})
	assert.NoError(t, err)

	var out LoginProviderOutput = DefaultLogin{Form: form}
	dl, ok := out.(DefaultLogin)
	assert.True(t, ok)
	assert.Equal(t, "login-form", dl.Form.ID())
	assert.Equal(t, "POST", dl.Form.Method().HTMLMethod())
}
