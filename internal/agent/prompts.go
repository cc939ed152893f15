package agent

import "fmt"

// decideSystemPrompt embeds the tool catalog and constrains the model to the
// single-object reply protocol the interpreter understands.
func decideSystemPrompt(catalog string) string {
	return fmt.Sprintf(`You are a helpful assistant with access to the following tools:

%s

When the user's question requires one of these tools, respond with ONLY a JSON object in this exact format, and nothing else:

{"tool": "read_doc_contents", "arguments": {"doc_id": "report.pdf"}}

Use the tool name and argument names exactly as listed above. Call at most one tool per reply.

When the question can be answered without any tool, respond with ONLY a JSON object in this exact format, and nothing else:

{"answer": "your answer here"}

Do not add any text before or after the JSON object.`, catalog)
}

const synthesisSystemPrompt = `You are a helpful assistant. Answer the user's question using the tool result provided. Respond with plain conversational text. Do not call any tools and do not output JSON.`

// synthesisUserPrompt packs the original question, the tool used and its
// result into one user turn for the final answer.
func synthesisUserPrompt(question, toolName, result string) string {
	return fmt.Sprintf("Question: %s\n\nTool used: %s\nTool result:\n%s\n\nAnswer the question based on the tool result.",
		question, toolName, result)
}
