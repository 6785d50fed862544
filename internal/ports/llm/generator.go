package llm

import "context"

// Generator es el port hacia el proveedor de texto (chat-completions).
// La implementación real vive en adapters/llm; los tests usan stubs.
type Generator interface {
	// Generate envía un prompt y devuelve el texto de la primera completion,
	// sin modificar. Cualquier fallo (red, auth, quota, payload) vuelve como error.
	Generate(ctx context.Context, prompt string) (string, error)
}
