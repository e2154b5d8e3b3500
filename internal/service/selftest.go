package service

import (
	"math"
	"strings"

	"brain-tutor/internal/domain"
)

// TestScenario es un caso guionado del arnes de diagnostico.
type TestScenario struct {
	ID               string               `json:"id"`
	Input            string               `json:"input"`
	ExpectedElements []string             `json:"expected_elements"`
	Category         domain.Subject       `json:"category"`
	Dominance        domain.DominanceType `json:"dominance"`
	Description      string               `json:"description"`
}

// ResponseAnalysis es el resultado de puntuar una respuesta contra un caso.
type ResponseAnalysis struct {
	ContentScore     int      `json:"content_score"`
	AlignmentScore   int      `json:"alignment_score"`
	OverallScore     int      `json:"overall_score"`
	MatchedElements  []string `json:"matched_elements"`
	IndicatorMatches []string `json:"indicator_matches"`
	Passed           bool     `json:"passed"`
}

// brainIndicators: raices de palabras que delatan el estilo de cada dominancia.
var brainIndicators = map[domain.DominanceType][]string{
	domain.DominanceLeft:     {"step", "method", "system", "logic", "analy", "struct", "order", "sequence", "detail", "fact"},
	domain.DominanceRight:    {"creat", "visual", "imag", "story", "feel", "intuit", "holist", "art", "metaphor", "color"},
	domain.DominanceBalanced: {"balance", "combin", "both", "mix", "adapt", "versatil", "comprehens", "flexible", "various"},
}

// AnalyzeResponse puntua una respuesta: 60% contenido esperado presente,
// 40% alineacion con los indicadores de estilo de la dominancia. Pasa con
// puntaje total >= 60.
func AnalyzeResponse(response string, expectedElements []string, dominance domain.DominanceType) ResponseAnalysis {
	text := strings.ToLower(response)

	var matched []string
	for _, element := range expectedElements {
		if strings.Contains(text, strings.ToLower(element)) {
			matched = append(matched, element)
		}
	}

	contentScore := 0.0
	if len(expectedElements) > 0 {
		contentScore = float64(len(matched)) / float64(len(expectedElements)) * 100
	}

	indicators := brainIndicators[dominance]
	var indicatorMatches []string
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			indicatorMatches = append(indicatorMatches, indicator)
		}
	}

	alignmentScore := 0.0
	if len(indicators) > 0 {
		alignmentScore = float64(len(indicatorMatches)) / float64(len(indicators)) * 100
	}
	if len(matched) > 0 {
		alignmentScore += 25
	}
	alignmentScore = math.Min(100, alignmentScore)

	overall := contentScore*0.6 + alignmentScore*0.4

	return ResponseAnalysis{
		ContentScore:     int(math.Round(contentScore)),
		AlignmentScore:   int(math.Round(alignmentScore)),
		OverallScore:     int(math.Round(overall)),
		MatchedElements:  matched,
		IndicatorMatches: indicatorMatches,
		Passed:           overall >= 60,
	}
}

// SelfTestScenarios devuelve la bateria fija de regresion de la tabla de
// politicas, agrupada por dominancia.
func SelfTestScenarios() []TestScenario {
	return []TestScenario{
		{
			ID:               "left-math-1",
			Input:            "How can I solve quadratic equations more effectively?",
			ExpectedElements: []string{"step-by-step", "systematic", "logical", "formula", "structured", "methodical"},
			Category:         domain.SubjectMath,
			Dominance:        domain.DominanceLeft,
			Description:      "Tests analytical approach to mathematical problem-solving",
		},
		{
			ID:               "left-science-1",
			Input:            "Explain the scientific method for conducting experiments",
			ExpectedElements: []string{"hypothesis", "data", "analysis", "systematic", "organized", "procedure"},
			Category:         domain.SubjectScience,
			Dominance:        domain.DominanceLeft,
			Description:      "Tests structured approach to scientific methodology",
		},
		{
			ID:               "left-general-1",
			Input:            "What's the best way to study for exams?",
			ExpectedElements: []string{"schedule", "organized", "systematic", "structured", "plan", "methodical"},
			Category:         domain.SubjectGeneral,
			Dominance:        domain.DominanceLeft,
			Description:      "Tests logical approach to study planning",
		},
		{
			ID:               "right-math-1",
			Input:            "Help me understand calculus concepts better",
			ExpectedElements: []string{"visualize", "imagine", "creative", "story", "picture", "metaphor"},
			Category:         domain.SubjectMath,
			Dominance:        domain.DominanceRight,
			Description:      "Tests creative approach to mathematical concepts",
		},
		{
			ID:               "right-language-1",
			Input:            "How can I improve my creative writing skills?",
			ExpectedElements: []string{"imagination", "creative", "storytelling", "emotional", "expressive", "artistic"},
			Category:         domain.SubjectLanguage,
			Dominance:        domain.DominanceRight,
			Description:      "Tests intuitive approach to language learning",
		},
		{
			ID:               "right-general-1",
			Input:            "What learning techniques work best for me?",
			ExpectedElements: []string{"visual", "creative", "holistic", "intuitive", "experiential", "imaginative"},
			Category:         domain.SubjectGeneral,
			Dominance:        domain.DominanceRight,
			Description:      "Tests holistic approach to learning strategies",
		},
		{
			ID:               "balanced-tech-1",
			Input:            "How should I approach learning programming?",
			ExpectedElements: []string{"balanced", "both", "combine", "versatile", "comprehensive", "adaptive"},
			Category:         domain.SubjectTechnology,
			Dominance:        domain.DominanceBalanced,
			Description:      "Tests balanced approach to technical learning",
		},
		{
			ID:               "balanced-general-1",
			Input:            "What's the most effective learning strategy?",
			ExpectedElements: []string{"balanced", "mix", "combination", "well-rounded", "comprehensive", "flexible"},
			Category:         domain.SubjectGeneral,
			Dominance:        domain.DominanceBalanced,
			Description:      "Tests balanced approach to general learning",
		},
	}
}

// ScenarioResult es el veredicto de un caso corrido contra el motor.
type ScenarioResult struct {
	Scenario TestScenario     `json:"scenario"`
	Response string           `json:"response"`
	Source   string           `json:"source"`
	Analysis ResponseAnalysis `json:"analysis"`
}

// RunSelfTest corre la bateria por el camino determinista del motor (el
// generador de fallback), de modo que la regresion es reproducible y no
// requiere credenciales. dominance vacio corre todas las dominancias.
func RunSelfTest(dominance domain.DominanceType) []ScenarioResult {
	var fallback FallbackGenerator
	var results []ScenarioResult

	for _, scenario := range SelfTestScenarios() {
		if dominance != "" && scenario.Dominance != dominance {
			continue
		}
		subject := ClassifySubject(scenario.Input)
		policy := PolicyFor(scenario.Dominance, subject)
		response := fallback.Reply(scenario.Input, scenario.Dominance, subject, policy)

		results = append(results, ScenarioResult{
			Scenario: scenario,
			Response: response,
			Source:   SourceFallback,
			Analysis: AnalyzeResponse(response, scenario.ExpectedElements, scenario.Dominance),
		})
	}
	return results
}
