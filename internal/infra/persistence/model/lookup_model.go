package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// LookupModel mirrors a document in the 'categories' or 'floors' collection.
type LookupModel struct {
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func ToCategoryDomain(id string, m *LookupModel) *entity.Category {
	return &entity.Category{ID: id, Name: m.Name, CreatedAt: m.CreatedAt}
}

func ToFloorDomain(id string, m *LookupModel) *entity.Floor {
	return &entity.Floor{ID: id, Name: m.Name, CreatedAt: m.CreatedAt}
}
