package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// MallModel mirrors a document in the 'malls' collection.
type MallModel struct {
	MallName         string    `firestore:"mallName"`
	Location         string    `firestore:"location"`
	Description      string    `firestore:"description,omitempty"`
	MaxMerchants     int       `firestore:"maxMerchants"`
	CurrentMerchants int       `firestore:"currentMerchants"`
	CreatedBy        string    `firestore:"createdBy,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt,omitempty"`
}

// ToMallDomain maps the persistence model back to a domain entity.
func ToMallDomain(id string, m *MallModel) *entity.Mall {
	return &entity.Mall{
		ID:               id,
		MallName:         m.MallName,
		Location:         m.Location,
		Description:      m.Description,
		MaxMerchants:     m.MaxMerchants,
		CurrentMerchants: m.CurrentMerchants,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromMallDomain maps a domain entity to its persistence model.
func FromMallDomain(mall *entity.Mall) *MallModel {
	return &MallModel{
		MallName:         mall.MallName,
		Location:         mall.Location,
		Description:      mall.Description,
		MaxMerchants:     mall.MaxMerchants,
		CurrentMerchants: mall.CurrentMerchants,
		CreatedBy:        mall.CreatedBy,
		CreatedAt:        mall.CreatedAt,
		UpdatedAt:        mall.UpdatedAt,
	}
}
