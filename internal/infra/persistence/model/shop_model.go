package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// ShopModel mirrors a document in the 'shops' collection.
type ShopModel struct {
	ShopName      string    `firestore:"shopName"`
	Category      string    `firestore:"category"`
	Floor         string    `firestore:"floor"`
	Description   string    `firestore:"description,omitempty"`
	ContactNumber string    `firestore:"contactNumber,omitempty"`
	ImageURL      string    `firestore:"imageURL,omitempty"`
	OwnerUID      string    `firestore:"ownerId"`
	MallID        string    `firestore:"mallId"`
	MallName      string    `firestore:"mallName"`
	CreatedBy     string    `firestore:"createdBy,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt,omitempty"`
}

// ToShopDomain maps the persistence model back to a domain entity.
func ToShopDomain(id string, m *ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:            id,
		ShopName:      m.ShopName,
		Category:      m.Category,
		Floor:         m.Floor,
		Description:   m.Description,
		ContactNumber: m.ContactNumber,
		ImageURL:      m.ImageURL,
		OwnerUID:      m.OwnerUID,
		MallID:        m.MallID,
		MallName:      m.MallName,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromShopDomain maps a domain entity to its persistence model.
func FromShopDomain(s *entity.Shop) *ShopModel {
	return &ShopModel{
		ShopName:      s.ShopName,
		Category:      s.Category,
		Floor:         s.Floor,
		Description:   s.Description,
		ContactNumber: s.ContactNumber,
		ImageURL:      s.ImageURL,
		OwnerUID:      s.OwnerUID,
		MallID:        s.MallID,
		MallName:      s.MallName,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
