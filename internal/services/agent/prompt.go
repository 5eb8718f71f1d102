package agent

import "fmt"

// promptTemplate injects retrieved context ahead of the user question.
const promptTemplate = `You are a helpful AI assistant. Use the provided context to answer the user's question accurately and concisely.

Context Information:
%s

User Question: %s

Please provide a clear and informative answer based on the context provided. If the context doesn't contain relevant information, say so and provide your best response based on your knowledge.`

// BuildPrompt assembles the augmented prompt from the retrieved context
// block and the user query.
func BuildPrompt(query, context string) string {
	return fmt.Sprintf(promptTemplate, context, query)
}
