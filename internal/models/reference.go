package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReferenceKind describes one append-only lookup list: the collection that
// holds it and the single string field identifying each entry.
type ReferenceKind struct {
	Collection string
	Field      string
	// ExposeID copies _id into an "id" field when listing.
	ExposeID bool
}

var (
	CategoryKind   = ReferenceKind{Collection: "category", Field: "category"}
	PositionKind   = ReferenceKind{Collection: "position", Field: "position"}
	SetupKind      = ReferenceKind{Collection: "setup", Field: "setup"}
	RateKind       = ReferenceKind{Collection: "rate", Field: "rate"}
	RoleKind       = ReferenceKind{Collection: "role", Field: "role"}
	SkillKind      = ReferenceKind{Collection: "skill", Field: "itemName", ExposeID: true}
	DegreeKind     = ReferenceKind{Collection: "degree", Field: "degree"}
	CourseKind     = ReferenceKind{Collection: "course", Field: "course"}
	UniversityKind = ReferenceKind{Collection: "university", Field: "university"}
)

// ReferenceKinds lists every lookup list served under /admin.
var ReferenceKinds = []ReferenceKind{
	CategoryKind, PositionKind, SetupKind, RateKind, RoleKind,
	SkillKind, DegreeKind, CourseKind, UniversityKind,
}

type ReferenceItem struct {
	Id    primitive.ObjectID
	Kind  ReferenceKind
	Value string
}

func (r ReferenceItem) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		r.Kind.Field: r.Value,
	}
	if !r.Id.IsZero() {
		out["_id"] = r.Id.Hex()
		if r.Kind.ExposeID {
			out["id"] = r.Id.Hex()
		}
	}
	return json.Marshal(out)
}
