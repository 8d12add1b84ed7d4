// Package csp builds Content-Security-Policy header values.
//
//	p := csp.New().
//	    With(csp.DefaultSrc, csp.Self).
//	    With(csp.StyleSrc, csp.Self, "https://cdn.example.com")
//	w.Header().Set(p.HeaderName(), p.String())
//
// A Policy is an immutable value: With and ReportOnly return modified
// copies, so presets can be shared between goroutines.
package csp

import (
	"slices"
	"strings"
)

// Directive names.
const (
	DefaultSrc     = "default-src"
	ScriptSrc      = "script-src"
	StyleSrc       = "style-src"
	ImgSrc         = "img-src"
	FontSrc        = "font-src"
	ConnectSrc     = "connect-src"
	FrameAncestors = "frame-ancestors"
	FormAction     = "form-action"
	BaseURI        = "base-uri"
	ObjectSrc      = "object-src"
	ReportURI      = "report-uri"
)

// Common source expressions.
const (
	Self         = "'self'"
	None         = "'none'"
	UnsafeInline = "'unsafe-inline'"
	Data         = "data:"
)

// directives are emitted in this order.
var order = []string{
	DefaultSrc, ScriptSrc, StyleSrc, ImgSrc, FontSrc, ConnectSrc,
	FrameAncestors, FormAction, BaseURI, ObjectSrc, ReportURI,
}

type Policy struct {
	directives map[string][]string
	reportOnly bool
}

func New() Policy {
	return Policy{}
}

// With returns a copy of p with directive set to sources. An empty source
// list removes the directive.
func (p Policy) With(directive string, sources ...string) Policy {
	next := p.clone()
	if len(sources) == 0 {
		delete(next.directives, directive)
		return next
	}
	next.directives[directive] = slices.Clone(sources)
	return next
}

// ReportOnly returns a copy of p sent in report-only mode.
func (p Policy) ReportOnly(enabled bool) Policy {
	next := p.clone()
	next.reportOnly = enabled
	return next
}

func (p Policy) IsReportOnly() bool { return p.reportOnly }

// Sources returns the sources of directive.
func (p Policy) Sources(directive string) []string {
	return slices.Clone(p.directives[directive])
}

func (p Policy) clone() Policy {
	next := Policy{directives: make(map[string][]string, len(p.directives)), reportOnly: p.reportOnly}
	for k, v := range p.directives {
		next.directives[k] = v
	}
	return next
}

// String renders the header value. Unknown directives follow the known
// ones in name order.
func (p Policy) String() string {
	if len(p.directives) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.directives))
	for _, d := range order {
		if sources, ok := p.directives[d]; ok {
			parts = append(parts, d+" "+strings.Join(sources, " "))
		}
	}
	var extra []string
	for d := range p.directives {
		if !slices.Contains(order, d) {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	for _, d := range extra {
		parts = append(parts, d+" "+strings.Join(p.directives[d], " "))
	}
	return strings.Join(parts, "; ")
}

// HeaderName is the enforcing or the report-only header.
func (p Policy) HeaderName() string {
	if p.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// AdminPolicy fits the server-rendered admin pages: same-origin assets, no
// scripts, forms posting back to the application.
func AdminPolicy() Policy {
	return New().
		With(DefaultSrc, Self).
		With(ScriptSrc, None).
		With(StyleSrc, Self).
		With(ImgSrc, Self, Data).
		With(FontSrc, Self).
		With(FrameAncestors, None).
		With(FormAction, Self).
		With(BaseURI, Self).
		With(ObjectSrc, None)
}

// SwaggerUIPolicy allows the inline bootstrap code of Swagger UI.
func SwaggerUIPolicy() Policy {
	return New().
		With(DefaultSrc, Self).
		With(ScriptSrc, Self, UnsafeInline).
		With(StyleSrc, Self, UnsafeInline).
		With(ImgSrc, Self, Data).
		With(FontSrc, Self, Data).
		With(ConnectSrc, Self).
		With(FrameAncestors, None).
		With(BaseURI, Self).
		With(ObjectSrc, None)
}

// APIPolicy is for JSON responses, which never load sub-resources.
func APIPolicy() Policy {
	return New().
		With(DefaultSrc, None).
		With(FrameAncestors, None)
}
