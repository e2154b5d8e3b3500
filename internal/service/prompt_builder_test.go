package service

import (
	"strings"
	"testing"
	"time"

	"brain-tutor/internal/domain"
)

func TestBuildTutorPrompt(t *testing.T) {
	var builder TutorPromptBuilder
	policy := PolicyFor(domain.DominanceLeft, domain.SubjectMath)

	t.Run("incluye perfil, skeleton y estrategias", func(t *testing.T) {
		prompt := builder.BuildTutorPrompt(policy, domain.SubjectMath, domain.DominanceLeft, "how do I factor polynomials?", nil)

		for _, want := range []string{
			"Brain Dominance: left",
			"Subject Context: math",
			"=== PERSONALITY ADAPTATION ===",
			"=== CONTEXTUAL STRATEGIES ===",
			"=== GUIDELINES ===",
			"User message: how do I factor polynomials?",
		} {
			if !strings.Contains(prompt, want) {
				t.Fatalf("prompt missing %q:\n%s", want, prompt)
			}
		}
	})

	t.Run("maximo 3 estrategias", func(t *testing.T) {
		prompt := builder.BuildTutorPrompt(policy, domain.SubjectMath, domain.DominanceLeft, "question", nil)
		count := 0
		for _, strategy := range policy.Strategies {
			if strings.Contains(prompt, strategy) {
				count++
			}
		}
		if count != 3 {
			t.Fatalf("expected exactly 3 strategies embedded, got %d", count)
		}
	})

	t.Run("sin historial omite seccion de transcripcion", func(t *testing.T) {
		prompt := builder.BuildTutorPrompt(policy, domain.SubjectMath, domain.DominanceLeft, "question", nil)
		if strings.Contains(prompt, "PREVIOUS CONVERSATION CONTEXT") {
			t.Fatal("transcript section should be omitted with empty history")
		}
	})

	t.Run("sin estrategias omite seccion contextual", func(t *testing.T) {
		empty := policy
		empty.Strategies = nil
		prompt := builder.BuildTutorPrompt(empty, domain.SubjectGeneral, domain.DominanceLeft, "question", nil)
		if strings.Contains(prompt, "CONTEXTUAL STRATEGIES") {
			t.Fatal("strategies section should be omitted when cell is empty")
		}
	})

	t.Run("historial acotado a los ultimos 10 con roles", func(t *testing.T) {
		now := time.Now().UTC()
		var history []domain.Message
		for i := 0; i < 15; i++ {
			author := "u1"
			if i%2 == 1 {
				author = domain.AssistantAuthorID
			}
			history = append(history, domain.Message{
				AuthorID:  author,
				Content:   "msg" + string(rune('a'+i)),
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
			})
		}

		prompt := builder.BuildTutorPrompt(policy, domain.SubjectMath, domain.DominanceLeft, "question", history)
		if strings.Contains(prompt, "msga") || strings.Contains(prompt, "msge") {
			t.Fatal("oldest messages should be trimmed from transcript")
		}
		if !strings.Contains(prompt, "User: msgo") || !strings.Contains(prompt, "Assistant: msgn") {
			t.Fatalf("expected role-tagged recent messages:\n%s", prompt)
		}
	})
}
