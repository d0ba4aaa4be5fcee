package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// ProductModel mirrors a document in the 'products' collection.
type ProductModel struct {
	Name      string    `firestore:"name"`
	Price     float64   `firestore:"price"`
	Features  []string  `firestore:"features,omitempty"`
	ImageURL  string    `firestore:"imageURL,omitempty"`
	ShopID    string    `firestore:"shopId"`
	OwnerUID  string    `firestore:"ownerId"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty"`
}

func ToProductDomain(id string, m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      m.Name,
		Price:     m.Price,
		Features:  m.Features,
		ImageURL:  m.ImageURL,
		ShopID:    m.ShopID,
		OwnerUID:  m.OwnerUID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		Name:      p.Name,
		Price:     p.Price,
		Features:  p.Features,
		ImageURL:  p.ImageURL,
		ShopID:    p.ShopID,
		OwnerUID:  p.OwnerUID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
