// internal/app/system/limits/limits.go
package limits

// Request body size limits. They keep an oversized request from
// exhausting memory.
const (
	// MaxJSONBody is the largest JSON request body the API decodes.
	MaxJSONBody = 1 << 20 // 1 MB
)
