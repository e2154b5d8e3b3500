package domain

// DominanceType clasifica el estilo cognitivo del usuario.
type DominanceType string

const (
	DominanceLeft     DominanceType = "left"
	DominanceRight    DominanceType = "right"
	DominanceBalanced DominanceType = "balanced"
)

// IsValid indica si el valor pertenece al conjunto soportado.
func (d DominanceType) IsValid() bool {
	switch d {
	case DominanceLeft, DominanceRight, DominanceBalanced:
		return true
	}
	return false
}

// NormalizeDominance fuerza cualquier valor fuera del conjunto a "balanced".
func NormalizeDominance(raw string) DominanceType {
	d := DominanceType(raw)
	if !d.IsValid() {
		return DominanceBalanced
	}
	return d
}

// Subject es el area tematica detectada en un mensaje.
type Subject string

const (
	SubjectMath       Subject = "math"
	SubjectScience    Subject = "science"
	SubjectLanguage   Subject = "language"
	SubjectTechnology Subject = "technology"
	SubjectGeneral    Subject = "general"
)
