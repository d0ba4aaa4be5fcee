package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// OfferModel mirrors a document in the 'offers' collection.
type OfferModel struct {
	ProductID   string    `firestore:"productId"`
	Discount    float64   `firestore:"discount"`
	ValidTill   time.Time `firestore:"validTill"`
	Description string    `firestore:"description,omitempty"`
	OwnerUID    string    `firestore:"ownerId"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt,omitempty"`
}

func ToOfferDomain(id string, m *OfferModel) *entity.Offer {
	return &entity.Offer{
		ID:          id,
		ProductID:   m.ProductID,
		Discount:    m.Discount,
		ValidTill:   m.ValidTill,
		Description: m.Description,
		OwnerUID:    m.OwnerUID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromOfferDomain(o *entity.Offer) *OfferModel {
	return &OfferModel{
		ProductID:   o.ProductID,
		Discount:    o.Discount,
		ValidTill:   o.ValidTill,
		Description: o.Description,
		OwnerUID:    o.OwnerUID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
