package api

// APIResponse is the standard envelope for every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the inspection server.
type ServerConfig struct {
	Bind           string
	Port           int
	APIKey         string
	MaxUploadBytes int64
}

// ChunkSummary describes one chunk of an inspected file.
type ChunkSummary struct {
	Type       string `json:"type"`
	DataLength int    `json:"data_length"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// ImageSummary describes the header of a structurally valid PNG.
type ImageSummary struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	BitDepth  int    `json:"bit_depth"`
	ColorType uint8  `json:"color_type"`
	Interlace string `json:"interlace"`
	NumData   int    `json:"num_data_chunks"`
}

// InspectionReport is the result of parsing and validating one file.
type InspectionReport struct {
	ID            string         `json:"id,omitempty"`
	Container     string         `json:"container"`
	SizeBytes     int64          `json:"size_bytes"`
	Chunks        []ChunkSummary `json:"chunks"`
	Image         *ImageSummary  `json:"image,omitempty"`
	Valid         bool           `json:"valid"`
	InvalidReason string         `json:"invalid_reason,omitempty"`
	ErrorKind     string         `json:"error_kind,omitempty"`
}
