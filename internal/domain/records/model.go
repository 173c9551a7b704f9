package records

import (
	"encoding/json"
	"time"
)

// Record es una fila de cualquier recurso. Values está indexado por Field.Name
// y contiene string, float64, int64, Date o nil.
type Record struct {
	ID     int64
	Values map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarshalJSON aplana los valores junto a id y timestamps:
// {"id":1,"pet_name":"Milo",...,"createdAt":"...","updatedAt":"..."}
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Values)+3)
	for k, v := range r.Values {
		out[k] = v
	}
	out["id"] = r.ID
	out["createdAt"] = r.CreatedAt.UTC().Format(time.RFC3339)
	out["updatedAt"] = r.UpdatedAt.UTC().Format(time.RFC3339)
	return json.Marshal(out)
}

// DeleteResult es la respuesta de un delete exitoso.
type DeleteResult struct {
	ID      int64 `json:"id" example:"3"`
	Deleted int64 `json:"deleted" example:"1"`
}
