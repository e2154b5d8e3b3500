package service

import (
	"fmt"
	"strings"

	"brain-tutor/internal/domain"
)

// FallbackDisclosure cierra toda respuesta degradada. La distincion
// contractual para callers es el campo source, nunca este texto.
const FallbackDisclosure = "Note: I'm currently using my specialized knowledge base to provide brain dominance-adapted responses. This ensures you get personalized learning guidance even when AI services are busy!"

// FallbackGenerator sintetiza respuestas sin modelo remoto. Solo lee
// tablas estaticas y plantillas, por lo que nunca puede fallar.
type FallbackGenerator struct{}

// Reply produce una respuesta determinista adaptada a la dominancia.
func (FallbackGenerator) Reply(message string, dominance domain.DominanceType, subject domain.Subject, policy Policy) string {
	text := strings.ToLower(message)

	if strings.Contains(text, "recursion") {
		return recursionExplanation(dominance)
	}

	if strings.Contains(text, "programming") || strings.Contains(text, "code") || strings.Contains(text, "function") {
		return programmingExplanation(text, dominance)
	}

	var greeting, suggestion string
	switch dominance {
	case domain.DominanceLeft:
		greeting = "I'll provide you with a structured, analytical approach to"
		suggestion = "Here are some logical strategies"
	case domain.DominanceRight:
		greeting = "Let me share some creative and intuitive insights about"
		suggestion = "Here are some visual and imaginative approaches"
	default:
		greeting = "I'll help you with a well-rounded approach to"
		suggestion = "Here are some balanced strategies"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s your %s learning question.\n\n", greeting, subject))

	if len(policy.Strategies) > 0 {
		sb.WriteString(fmt.Sprintf("%s for %s-brain learners:\n\n", suggestion, dominance))
		picked := policy.Strategies
		if len(picked) > 3 {
			picked = picked[:3]
		}
		for i, strategy := range picked {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(fmt.Sprintf("%d. %s", i+1, strategy))
		}
	} else {
		sb.WriteString(fmt.Sprintf("%s to help you learn effectively. I'm designed to adapt to your %s-brain learning style.", suggestion, dominance))
	}

	sb.WriteString("\n\n")
	sb.WriteString(FallbackDisclosure)

	return sb.String()
}

// recursionExplanation: tema de alto valor con explicacion manual por dominancia.
func recursionExplanation(dominance domain.DominanceType) string {
	switch dominance {
	case domain.DominanceLeft:
		return `**Recursion in Programming** - A Structured Approach:

**Definition**: Recursion is a programming technique where a function calls itself to solve a problem by breaking it into smaller, similar subproblems.

**Key Components**:
1. **Base Case**: The condition that stops the recursion
2. **Recursive Case**: The function calling itself with modified parameters
3. **Progress**: Each call must move closer to the base case

**Example Structure**:
` + "```" + `
func factorial(n int) int {
    if n <= 1 {
        return 1 // Base case
    }
    return n * factorial(n-1) // Recursive case
}
` + "```" + `

**Benefits**: Clean, mathematical approach to complex problems like tree traversal, mathematical sequences, and divide-and-conquer algorithms.

` + FallbackDisclosure
	case domain.DominanceRight:
		return `**Understanding Recursion** - A Creative Perspective:

**Think of recursion like Russian nesting dolls** - each doll contains a smaller version of itself until you reach the tiniest one!

**Visual Concept**: Imagine a mirror reflecting another mirror. Each reflection shows a smaller image until it becomes too small to see.

**Real-World Analogy**:
- Folders within folders on your computer
- Tree branches splitting into smaller branches
- A story within a story within a story

**Creative Example**: factorial(5) is like asking "What's 5 times whatever 4's answer is?" and 4 asks 3, and 3 asks 2, until 1 says "I'm 1!" and everyone multiplies back up.

**Why it's beautiful**: Recursion lets you solve big problems by thinking about the smallest possible version first!

` + FallbackDisclosure
	default:
		return `**Recursion in Programming** - A Comprehensive Overview:

**Definition**: Recursion is when a function calls itself to solve problems by breaking them into smaller, manageable pieces.

**Core Concept**: Every recursive solution needs:
- **Base case**: When to stop calling itself
- **Recursive case**: How it calls itself with simpler input

**Practical Example**:
` + "```" + `
func countdown(n int) {
    if n <= 0 {
        fmt.Println("Done!") // Base case
        return
    }
    fmt.Println(n)
    countdown(n - 1) // Recursive call
}
` + "```" + `

**When to use**: Great for problems with self-similar structure like file systems, mathematical calculations, and data tree navigation.

**Pro tip**: Always ensure your recursive calls move toward the base case to avoid infinite loops!

` + FallbackDisclosure
	}
}

func programmingExplanation(text string, dominance domain.DominanceType) string {
	concept := "programming concepts"
	switch {
	case strings.Contains(text, "loop"):
		concept = "loops"
	case strings.Contains(text, "variable"):
		concept = "variables"
	case strings.Contains(text, "array"):
		concept = "arrays"
	case strings.Contains(text, "object"):
		concept = "objects"
	}

	switch dominance {
	case domain.DominanceLeft:
		return fmt.Sprintf(`I'll provide you with a structured, analytical approach to understanding %s.

**Systematic Learning Strategy**:
1. Start with the fundamental definition and syntax
2. Practice with simple examples first
3. Build complexity gradually with real-world applications
4. Debug systematically when errors occur

**Key Points**:
- Focus on logical problem-solving steps
- Use documentation and official references
- Practice with structured coding exercises
- Test your code methodically

**Recommended approach**: Break down complex problems into smaller, logical components and solve them step-by-step.

%s`, concept, FallbackDisclosure)
	case domain.DominanceRight:
		return fmt.Sprintf(`Let me share some creative and intuitive insights about %s!

**Visual Learning Approach**:
- Think of code as storytelling - each line tells part of the story
- Use analogies and real-world comparisons
- Draw diagrams and flowcharts to visualize logic
- Build projects that excite your creativity

**Creative Strategies**:
1. Role-play: Imagine you're the computer executing the code
2. Visualize: Draw what the code does step by step
3. Build: Create something meaningful and fun
4. Collaborate: Code with others and share ideas

**Remember**: Programming is like art - there are many ways to solve the same problem creatively! Let your imagination guide your coding journey.

%s`, concept, FallbackDisclosure)
	default:
		return fmt.Sprintf(`I'll help you with a comprehensive, well-rounded approach to understanding %s.

**Balanced Learning Strategy**:
- **Logical Foundation**: Start with clear definitions and syntax rules
- **Creative Application**: Build interesting projects that motivate you
- **Versatile Practice**: Combine structured exercises with creative coding
- **Community Learning**: Join coding communities for diverse perspectives

**Effective Techniques**:
1. Study the theory systematically
2. Apply concepts in creative projects
3. Debug with both logical analysis and intuitive testing
4. Stay adaptive: adjust your strategy as concepts get harder

**Pro tip**: The best programmers combine logical thinking with creative problem-solving. Use both sides of your brain!

%s`, concept, FallbackDisclosure)
	}
}
