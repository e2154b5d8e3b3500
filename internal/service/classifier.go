package service

import (
	"strings"

	"brain-tutor/internal/domain"
)

// subjectKeywords se evalua en este orden fijo; el primer match gana.
var subjectPriority = []domain.Subject{
	domain.SubjectMath,
	domain.SubjectScience,
	domain.SubjectLanguage,
	domain.SubjectTechnology,
}

var subjectKeywords = map[domain.Subject][]string{
	domain.SubjectMath:       {"math", "calculation", "number", "algebra", "geometry", "calculus"},
	domain.SubjectScience:    {"science", "experiment", "biology", "chemistry", "physics", "research"},
	domain.SubjectLanguage:   {"language", "writing", "reading", "grammar", "literature", "vocabulary"},
	domain.SubjectTechnology: {"programming", "code", "technology", "computer", "software", "web"},
}

// ClassifySubject mapea texto libre a una de las materias fijas.
// Es determinista y total: sin match devuelve "general".
func ClassifySubject(message string) domain.Subject {
	text := strings.ToLower(message)
	for _, subject := range subjectPriority {
		for _, keyword := range subjectKeywords[subject] {
			if strings.Contains(text, keyword) {
				return subject
			}
		}
	}
	return domain.SubjectGeneral
}
