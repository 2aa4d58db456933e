package generator

import (
	"fmt"
	"strings"
)

const courseSystemPrompt = `You are a distinguished professor and subject matter expert known for precision, accuracy, and depth of instruction. You prioritize educational value and factual correctness above all else.`

const coreInstructions = `CRITICAL QUALITY & ACCURACY PROTOCOLS:
1. ACT AS A VERIFIED EXPERT: You are the world's leading authority on this subject. Your content must be factually impeccable, nuanced, and professional.
2. DOUBLE-CHECK FACTS: Verify all dates, formulas, code syntax, and historical events. If a specific detail is debated in the field, present multiple viewpoints.
3. EXPLAIN "WHY": Do not just list facts. Explain underlying mechanisms, context, and reasoning. Teach concepts, don't just state them.
4. SAFETY & LEGAL: If the topic involves medical, legal, or financial advice, strictly adhere to consensus guidelines. Provide accurate, conservative educational information and imply standard disclaimers in the text.
5. NO HALLUCINATIONS: Do not invent citations, case laws, or libraries.

COURSE SCALE - "MASTERCLASS" LEVEL:
- Modules: 4 to 6 distinct, progressive modules.
- Lessons: 3 to 5 lessons per module.
- Content Volume: ~600-800 words per lesson. Detailed, comprehensive, and exhaustive.
- Format: Use Markdown effectively (H2, H3, bold, lists, code blocks).`

func buildTitleUserMessage(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a professional, academic, and engaging course title for a university-grade course about: %q.\n", topic))
	b.WriteString(`
Guidelines:
- It should sound like a Masterclass or University Curriculum.
- Examples: "Advanced Neurobiology: Mechanisms of Memory", "Strategic Financial Management for Executives", "Full Stack Architecture: From Prototype to Scale".

Return ONLY the title text, nothing else. No quotes.`)

	return b.String()
}

// buildCourseUserMessage builds the full-course prompt. When title is set,
// the course must use it verbatim; otherwise the model picks its own.
func buildCourseUserMessage(topic, title string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(fmt.Sprintf("Create a rigorous, university-grade online course curriculum with the title: %q (Topic: %s).\n\n", title, topic))
	} else {
		b.WriteString(fmt.Sprintf("Create a rigorous, university-grade online course curriculum about %q.\n\n", topic))
	}

	b.WriteString(coreInstructions)

	b.WriteString("\n\nStructure Requirements:\n")
	if title != "" {
		b.WriteString("1. Use the provided Title exactly.\n")
	} else {
		b.WriteString("1. Create a Professional, Academic Course Title that sounds like a university masterclass.\n")
	}
	b.WriteString(`2. Create a logical flow from foundational to advanced concepts.
3. Quizzes: 3 challenging questions per lesson with helpful explanations.
4. Resources: Provide 2-3 high-quality external resources (Documentation, Videos, Articles) for each lesson.
5. Final Exam: 15 comprehensive questions testing deep understanding.

The output must be pure JSON matching the schema.`)

	return b.String()
}
