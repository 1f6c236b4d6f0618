package presets

import (
	"time"

	"discdump/internal/execctx"
)

// Preset is a saved, normalized parameter string.
type Preset struct {
	ID          string          `json:"id"`
	Program     execctx.Program `json:"program"`
	Name        string          `json:"name"`
	Parameters  string          `json:"parameters"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
