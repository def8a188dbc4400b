package remote

import (
	"github.com/example/fractalexplorer/internal/viewport"
)

// ClientMessage is one input event sent by the browser client.
type ClientMessage struct {
	Type    string  `json:"type"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Shift   bool    `json:"shift,omitempty"`
	DeltaY  float64 `json:"delta_y,omitempty"`
	Action  string  `json:"action,omitempty"`
	Variant string  `json:"variant,omitempty"`
	Preset  string  `json:"preset,omitempty"`
	// Re and Im are optional; a missing component keeps its current value.
	Re *float64 `json:"re,omitempty"`
	Im *float64 `json:"im,omitempty"`
}

// StatusMessage precedes every binary frame and describes the view it shows.
type StatusMessage struct {
	Type       string  `json:"type"`
	Variant    string  `json:"variant"`
	Zoom       float64 `json:"zoom"`
	CenterX    float64 `json:"center_x"`
	CenterY    float64 `json:"center_y"`
	JuliaRe    float64 `json:"julia_re"`
	JuliaIm    float64 `json:"julia_im"`
	ZoomText   string  `json:"zoom_text"`
	CenterText string  `json:"center_text"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func statusFor(v viewport.Viewport, width, height int) StatusMessage {
	st := v.Status()
	return StatusMessage{
		Type:       "status",
		Variant:    st.Variant.String(),
		Zoom:       st.Zoom,
		CenterX:    st.Center.X,
		CenterY:    st.Center.Y,
		JuliaRe:    st.JuliaC.X,
		JuliaIm:    st.JuliaC.Y,
		ZoomText:   st.ZoomText(),
		CenterText: st.CenterText(),
		Width:      width,
		Height:     height,
	}
}
