package types

// LoadVideoRequest selects an uploaded video for a session
type LoadVideoRequest struct {
	VideoID string `json:"video_id" binding:"required" example:"0c6f8d7e-1f6a-4b0e-9d6b-2f1f0f3c9a11"`
}

// MetadataRequest reports the duration the client's player read
type MetadataRequest struct {
	Duration float64 `json:"duration" binding:"min=0,max=86400" example:"42.5"`
}

// TimeRequest carries a playback position in seconds
type TimeRequest struct {
	Time float64 `json:"time" example:"12.25"`
}

// LoadFailedRequest reports a player that could not load the video
type LoadFailedRequest struct {
	Reason string `json:"reason" example:"MEDIA_ERR_SRC_NOT_SUPPORTED"`
}

// PlayRequest starts or stops playback. Omit playing to toggle.
type PlayRequest struct {
	Playing *bool `json:"playing,omitempty" example:"true"`
}

// VolumeRequest sets the output volume in [0, 1]
type VolumeRequest struct {
	Volume float64 `json:"volume" example:"0.8"`
}

// PointerRequest describes a pointer event on the timeline track
type PointerRequest struct {
	Offset float64 `json:"offset" example:"320"` // Pixels from the left edge of the track
	Width  float64 `json:"width" example:"640"`  // Rendered track width in pixels
	Shift  bool    `json:"shift,omitempty"`      // Shift held on pointer down
}

// SegmentRequest marks a time range for removal
type SegmentRequest struct {
	Start float64 `json:"start" example:"4.5"`
	End   float64 `json:"end" example:"9"`
}

// OverlayRequest adds a text overlay. Omitted fields take the defaults:
// centered, white, 24px, visible for five seconds from the playhead.
type OverlayRequest struct {
	Text     string   `json:"text" binding:"required" example:"Day one"`
	X        *float64 `json:"x,omitempty" example:"0.5"`
	Y        *float64 `json:"y,omitempty" example:"0.5"`
	Color    string   `json:"color,omitempty" example:"#FFCC00"`
	FontSize int      `json:"font_size,omitempty" example:"32"`
	Start    *float64 `json:"start,omitempty" example:"2"`
	End      *float64 `json:"end,omitempty" example:"7"`
}

// ExportRequest starts an export of the session. An empty output name uses
// the source name with an _edited suffix.
type ExportRequest struct {
	OutputName string `json:"output_name,omitempty" example:"holiday_edited.mp4"`
}
