package profile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// nestedMerge lists the sub-objects whose own keys are merged instead of
// replaced. The remaining sub-objects are replaced whole.
var nestedMerge = map[string]bool{
	KeyConocimientoPrevio:      true,
	KeyPreferenciasAprendizaje: true,
	KeyMotivacion:              true,
	KeyInteresesPersonales:     true,
}

// Merge overlays partial onto current and returns the result; neither
// input is modified. Keys absent from partial are carried over
// byte-for-byte. For the nestedMerge keys, when both sides are JSON
// objects, the inner keys of current survive unless partial supplies
// them too.
func Merge(current, partial api.ProfileData) (api.ProfileData, error) {
	out := make(api.ProfileData, len(current)+len(partial))
	for k, v := range current {
		out[k] = v
	}
	for k, v := range partial {
		existing, ok := current[k]
		if !ok || !nestedMerge[k] || !isObject(existing) || !isObject(v) {
			out[k] = v
			continue
		}
		merged, err := mergeObjects(existing, v)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", k, err)
		}
		out[k] = merged
	}
	return out, nil
}

func mergeObjects(base, overlay json.RawMessage) (json.RawMessage, error) {
	var a, b map[string]json.RawMessage
	if err := json.Unmarshal(base, &a); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(overlay, &b); err != nil {
		return nil, err
	}
	for k, v := range b {
		a[k] = v
	}
	return json.Marshal(a)
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
