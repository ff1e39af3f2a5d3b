package fitting

// TypeEntity is an immutable ship or module definition sourced from the
// type data provider. Attributes is the sparse dogma attribute map keyed by
// numeric attribute id; Effects lists the dogma effect ids that flag fitting
// behavior (slot power, turret/launcher hardpoint usage, rig/subsystem).
type TypeEntity struct {
	ID         int             `json:"type_id"`
	Name       string          `json:"name"`
	GroupID    int             `json:"group_id"`
	CategoryID int             `json:"category_id"`
	Mass       float64         `json:"mass,omitempty"`
	Volume     float64         `json:"volume,omitempty"`
	Attributes map[int]float64 `json:"attributes"`
	Effects    []int           `json:"effects"`
}

// Attr looks up a numeric attribute by id, returning fallback if the type
// does not define it. Absence is a normal condition of the sparse attribute
// model, never an error.
func (t *TypeEntity) Attr(attributeID int, fallback float64) float64 {
	if t == nil || t.Attributes == nil {
		return fallback
	}
	if v, ok := t.Attributes[attributeID]; ok {
		return v
	}
	return fallback
}

// HasEffect reports whether the type carries the given dogma effect id.
func (t *TypeEntity) HasEffect(effectID int) bool {
	if t == nil {
		return false
	}
	for _, e := range t.Effects {
		if e == effectID {
			return true
		}
	}
	return false
}

// IsSkill reports whether the type is classified under the skill category.
func (t *TypeEntity) IsSkill(skillCategoryID int) bool {
	return t != nil && t.CategoryID == skillCategoryID
}
