package models

type Exercise struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	TargetMuscle string  `json:"targetMuscle"`
	Difficulty   int     `json:"difficulty"` // 1 beginner, 2 intermediate, 3 advanced
	Instructions *string `json:"instructions,omitempty"`
	Images       []Image `json:"image"`
}
