package chat

const systemInstruction = "You are an educational assistant called eduAI. Answer clearly and helpfully."

// BuildPrompt wraps a user question in the fixed eduAI instruction.
func BuildPrompt(message string) string {
	return systemInstruction + "\n\nUser question: " + message
}
