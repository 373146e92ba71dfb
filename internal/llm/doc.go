// Package llm provides language model clients for query-intent resolution.
// It supports the Gemini and OpenAI providers behind a common interface, with
// structured-output schemas constraining the response shape.
package llm
