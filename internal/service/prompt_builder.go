package service

import (
	"fmt"
	"strings"

	"brain-tutor/internal/domain"
)

const maxHistoryMessages = 10

// TutorPromptBuilder arma el prompt de sistema que se envia al LLM generador.
type TutorPromptBuilder struct{}

// BuildTutorPrompt compone instruccion de sistema + transcripcion + mensaje.
// history es entrada de solo lectura; se asume ya ordenada por creacion.
func (TutorPromptBuilder) BuildTutorPrompt(
	policy Policy,
	subject domain.Subject,
	dominance domain.DominanceType,
	userMessage string,
	history []domain.Message,
) string {
	var sb strings.Builder

	// 1. Identidad y perfil del alumno
	sb.WriteString("You are an advanced AI learning assistant specifically designed to adapt to different brain dominance types.\n\n")
	sb.WriteString("=== USER PROFILE ===\n")
	sb.WriteString(fmt.Sprintf("- Brain Dominance: %s\n", dominance))
	sb.WriteString(fmt.Sprintf("- Communication Style: %s\n", policy.CommunicationStyle))
	sb.WriteString(fmt.Sprintf("- Response Style: %s\n", policy.StyleLabel))
	sb.WriteString(fmt.Sprintf("- Subject Context: %s\n\n", subject))

	// 2. Adaptacion de personalidad
	sb.WriteString("=== PERSONALITY ADAPTATION ===\n")
	sb.WriteString(policy.PromptSkeleton)
	sb.WriteString("\n\n")

	// 3. Estrategias contextuales (solo si la celda de la tabla no esta vacia)
	if len(policy.Strategies) > 0 {
		picked := policy.Strategies
		if len(picked) > 3 {
			picked = picked[:3]
		}
		sb.WriteString("=== CONTEXTUAL STRATEGIES ===\n")
		sb.WriteString(fmt.Sprintf("Relevant learning strategies for %s-brain dominant learners in %s:\n", dominance, subject))
		for _, strategy := range picked {
			sb.WriteString(fmt.Sprintf("- %s\n", strategy))
		}
		sb.WriteString("\n")
	}

	// 4. Directivas de comportamiento
	sb.WriteString("=== GUIDELINES ===\n")
	sb.WriteString(fmt.Sprintf("- Always maintain your %s-brain personality throughout the response\n", dominance))
	sb.WriteString("- Keep responses focused and helpful (3-5 sentences for simple questions, longer for complex topics)\n")
	sb.WriteString("- If the user asks something unrelated to learning, gently guide them back to educational topics while maintaining your personality\n")
	sb.WriteString("- Use the provided learning strategies when applicable\n")
	sb.WriteString("- Be encouraging and supportive while staying true to your communication style\n")
	sb.WriteString("- Adapt your explanation complexity to match the user's question complexity\n\n")
	sb.WriteString("Remember: You are not just providing information, you are providing it in a way that resonates with this specific learner's brain type.\n")

	// Transcripcion reciente (solo si hay historial)
	if len(history) > 0 {
		recent := history
		if len(recent) > maxHistoryMessages {
			recent = recent[len(recent)-maxHistoryMessages:]
		}
		sb.WriteString("\n=== PREVIOUS CONVERSATION CONTEXT ===\n")
		for _, msg := range recent {
			role := "User"
			if msg.AuthorID == domain.AssistantAuthorID {
				role = "Assistant"
			}
			sb.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
		}
		sb.WriteString("\n--- Current conversation continues ---\n")
	}

	sb.WriteString(fmt.Sprintf("\nUser message: %s\n", userMessage))

	return sb.String()
}
