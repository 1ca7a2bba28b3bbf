package net

import "ShapeBoard/internal/state"

// Message types exchanged over the socket.
const (
	MsgPlace    = "place"
	MsgRemove   = "remove"
	MsgRename   = "rename"
	MsgImport   = "import"
	MsgExport   = "export"
	MsgHello    = "hello"
	MsgDocument = "document"
	MsgNotice   = "notice"
)

// ClientMessage is a gesture sent by the browser front-end. Only the fields
// relevant to Type are set.
type ClientMessage struct {
	Type string `json:"type"`

	// place
	ShapeType state.ShapeType `json:"shape_type,omitempty"`
	Color     string          `json:"color,omitempty"`
	X         float64         `json:"x,omitempty"`
	Y         float64         `json:"y,omitempty"`
	Width     float64         `json:"width,omitempty"`
	Height    float64         `json:"height,omitempty"`

	// remove
	ID int64 `json:"id,omitempty"`

	// rename
	Name string `json:"name"`

	// import
	FileName  string `json:"file_name,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Content   string `json:"content,omitempty"`
}

// ServerMessage is pushed to the browser after every gesture.
type ServerMessage struct {
	Type      string                  `json:"type"`
	SessionID string                  `json:"session_id,omitempty"`
	Document  *state.Document         `json:"document,omitempty"`
	Counts    map[state.ShapeType]int `json:"counts,omitempty"`
	FileName  string                  `json:"file_name,omitempty"`
	MediaType string                  `json:"media_type,omitempty"`
	Content   string                  `json:"content,omitempty"`
	Text      string                  `json:"text,omitempty"`
}
