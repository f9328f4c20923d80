package sink

import (
	"encoding/json"

	"github.com/matzehuels/pathviz/pkg/render"
)

// RenderJSON exports the plan as indented JSON for external drawing surfaces.
func RenderJSON(p render.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
