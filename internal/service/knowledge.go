package service

import "brain-tutor/internal/domain"

// Policy agrupa todo lo que condiciona una respuesta del tutor:
// estrategias por materia, esqueleto de prompt y temperatura de muestreo.
type Policy struct {
	Strategies         []string
	PromptSkeleton     string
	Temperature        float64
	StyleLabel         string
	CommunicationStyle string
}

// dominanceProfile define tono y muestreo por tipo de dominancia.
// La materia nunca afecta estos campos, solo las estrategias.
type dominanceProfile struct {
	promptSkeleton     string
	temperature        float64
	styleLabel         string
	communicationStyle string
}

var dominanceProfiles = map[domain.DominanceType]dominanceProfile{
	domain.DominanceLeft: {
		promptSkeleton: `You are a logical, analytical AI tutor who excels at structured, fact-based reasoning.
Your responses should be:
- Clear and step-by-step
- Well-organized with numbered points or bullet lists
- Focused on systematic approaches
- Rich in technical details and data
- Methodical in problem-solving
- Emphasizing cause-and-effect relationships`,
		temperature:        0.6,
		styleLabel:         "structured and analytical",
		communicationStyle: "methodical, logical, detail-oriented",
	},
	domain.DominanceRight: {
		promptSkeleton: `You are a creative, empathetic, and intuitive AI tutor who excels at imaginative and holistic thinking.
Your responses should be:
- Story-like and engaging
- Rich in analogies and metaphors
- Visually descriptive
- Emotionally connecting
- Focusing on big-picture concepts
- Using creative examples and scenarios`,
		temperature:        0.9,
		styleLabel:         "creative and intuitive",
		communicationStyle: "imaginative, empathetic, holistic",
	},
	domain.DominanceBalanced: {
		promptSkeleton: `You are a balanced AI tutor who seamlessly combines logical analysis with creative insight.
Your responses should be:
- Well-structured yet engaging
- Analytical but friendly
- Combining systematic approaches with creative examples
- Balancing details with big-picture thinking
- Using both logical reasoning and intuitive understanding`,
		temperature:        0.8,
		styleLabel:         "balanced and adaptive",
		communicationStyle: "versatile, comprehensive, well-rounded",
	},
}

// knowledgeBase: estrategias de aprendizaje por materia y dominancia.
// Tabla inmutable cargada al inicio del proceso; nunca se muta en runtime.
var knowledgeBase = map[domain.Subject]map[domain.DominanceType][]string{
	domain.SubjectMath: {
		domain.DominanceLeft: {
			"Step-by-step problem solving: Break complex equations into smaller parts",
			"Use logical sequences: Start with basic operations, then build complexity",
			"Practice with structured worksheets and formula memorization",
			"Focus on analytical thinking and pattern recognition in numbers",
			"Apply systematic approaches like PEMDAS or algebraic methods",
		},
		domain.DominanceRight: {
			"Visualize math concepts using charts, graphs, and geometric shapes",
			"Use storytelling to explain mathematical problems and real-world applications",
			"Create colorful mind maps connecting different mathematical concepts",
			"Learn through spatial reasoning and visual patterns",
			"Use analogies and metaphors to understand abstract concepts",
		},
		domain.DominanceBalanced: {
			"Combine visual aids with logical step-by-step approaches",
			"Use both analytical problem-solving and creative visualization",
			"Practice with real-world examples that require both logic and creativity",
			"Alternate between structured practice and exploratory learning",
			"Connect mathematical concepts to both practical and creative applications",
		},
	},
	domain.SubjectScience: {
		domain.DominanceLeft: {
			"Focus on systematic experimentation and data collection",
			"Use scientific method: hypothesis, experiment, analyze, conclude",
			"Study with detailed diagrams and classification systems",
			"Practice with quantitative analysis and statistical reasoning",
			"Break down complex processes into sequential steps",
		},
		domain.DominanceRight: {
			"Learn through hands-on experiments and visual demonstrations",
			"Use analogies and metaphors to understand complex concepts",
			"Create concept maps showing relationships between ideas",
			"Focus on the big picture and interconnected systems",
			"Use storytelling to remember scientific processes and discoveries",
		},
		domain.DominanceBalanced: {
			"Combine systematic study with creative exploration",
			"Use both detailed analysis and holistic understanding",
			"Practice with collaborative experiments and independent research",
			"Connect scientific concepts to real-world applications",
			"Balance theoretical knowledge with practical experimentation",
		},
	},
	domain.SubjectLanguage: {
		domain.DominanceLeft: {
			"Focus on grammar rules, syntax, and structured vocabulary building",
			"Use systematic approaches to language learning with clear progression",
			"Practice with analytical reading and detailed text analysis",
			"Study language patterns and logical sentence construction",
			"Use organized lists and systematic memorization techniques",
		},
		domain.DominanceRight: {
			"Learn through storytelling, creative writing, and imaginative exercises",
			"Use visual aids, images, and emotional connections to words",
			"Practice with music, rhythm, and artistic expression in language",
			"Focus on creative interpretation and intuitive understanding",
			"Use role-playing and dramatic expression to learn language",
		},
		domain.DominanceBalanced: {
			"Combine structured grammar study with creative expression",
			"Use both analytical reading and creative writing exercises",
			"Practice with diverse methods: visual, auditory, and kinesthetic",
			"Balance technical accuracy with creative fluency",
			"Integrate formal study with informal conversation practice",
		},
	},
	domain.SubjectTechnology: {
		domain.DominanceLeft: {
			"Learn programming through systematic step-by-step tutorials and structured documentation",
			"Focus on logical problem-solving, algorithm design, and debugging methodologies",
			"Use structured debugging approaches: identify, isolate, analyze, fix, test",
			"Practice with well-organized code examples, official documentation, and coding standards",
			"Apply mathematical principles to programming: recursion, data structures, complexity analysis",
			"Break down complex programming problems into smaller, manageable functions",
			"Focus on understanding syntax rules, data types, and control structures systematically",
		},
		domain.DominanceRight: {
			"Learn technology through creative projects and visual programming interfaces",
			"Focus on user experience design, creative problem-solving, and visual development tools",
			"Use visual programming tools, interactive coding platforms, and graphical interfaces",
			"Practice with multimedia projects, game development, and creative applications",
			"Connect technology to artistic endeavors: creative coding, digital art, interactive media",
			"Learn by building something meaningful: apps that solve real problems creatively",
			"Use analogies and storytelling to understand programming concepts and data flow",
		},
		domain.DominanceBalanced: {
			"Combine systematic learning with creative project-based approaches and real-world applications",
			"Balance technical skills with user-focused design thinking and practical implementation",
			"Practice both analytical problem-solving and creative innovation in your projects",
			"Integrate logical programming patterns with intuitive interface design principles",
			"Use both structured tutorials and exploratory learning through hands-on experimentation",
			"Build projects that require both technical precision and creative problem-solving",
			"Learn from diverse sources: documentation, creative communities, and practical examples",
		},
	},
	domain.SubjectGeneral: {
		domain.DominanceLeft: {
			"Create structured study schedules with clear goals and milestones",
			"Use logical reasoning and analytical thinking for problem-solving",
			"Focus on detail-oriented learning with systematic approaches",
			"Practice with data-driven methods and measurable outcomes",
			"Break complex topics into manageable, sequential components",
		},
		domain.DominanceRight: {
			"Use creative visualization and imaginative learning techniques",
			"Learn through experiential and hands-on approaches",
			"Focus on big-picture thinking and holistic understanding",
			"Practice with artistic expression and intuitive exploration",
			"Connect learning to emotions, stories, and personal experiences",
		},
		domain.DominanceBalanced: {
			"Combine structured planning with flexible, creative approaches",
			"Use both analytical and intuitive problem-solving methods",
			"Practice with diverse learning styles and adaptive strategies",
			"Balance detailed focus with comprehensive understanding",
			"Integrate logical analysis with creative insight",
		},
	},
}

// PolicyFor resuelve la politica de generacion para (dominancia, materia).
// Nunca falla: una celda ausente produce lista de estrategias vacia.
func PolicyFor(dominance domain.DominanceType, subject domain.Subject) Policy {
	if !dominance.IsValid() {
		dominance = domain.DominanceBalanced
	}
	profile := dominanceProfiles[dominance]

	var strategies []string
	if bySide, ok := knowledgeBase[subject]; ok {
		strategies = bySide[dominance]
	}

	return Policy{
		Strategies:         strategies,
		PromptSkeleton:     profile.promptSkeleton,
		Temperature:        profile.temperature,
		StyleLabel:         profile.styleLabel,
		CommunicationStyle: profile.communicationStyle,
	}
}
