package common

// Pattern is an uploaded diffraction pattern file
type Pattern struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Content    string `json:"content,omitempty"`
	UploadedAt int64  `json:"uploadedAt"`
}

// FigureSettings holds the plot controls. Backgrounds and Intensities are indexed like the patterns
type FigureSettings struct {
	AngleMin         float64   `json:"angleMin"`
	AngleMax         float64   `json:"angleMax"`
	GlobalSeparation float64   `json:"globalSeparation"`
	Backgrounds      []float64 `json:"backgrounds"`
	Intensities      []float64 `json:"intensities"`
}

// Trace is one processed line of the figure
type Trace struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// AngleRange is the visible 2θ interval
type AngleRange struct {
	Min int `json:"angleMin"`
	Max int `json:"angleMax"`
}
