// Package model contains the persistence representations of the domain
// entities. Field tags match the document field names the web client
// historically wrote, so existing collections keep working.
package model

import (
	"time"

	"supermall/internal/domain/entity"
)

// ProfileModel mirrors a document in the 'users' collection. The document
// id is the identity provider uid and is not stored as a field.
type ProfileModel struct {
	Name                string    `firestore:"name"`
	Email               string    `firestore:"email"`
	Role                string    `firestore:"role"`
	ContactNumber       string    `firestore:"contactNumber,omitempty"`
	MallID              string    `firestore:"mallId,omitempty"`
	MallName            string    `firestore:"mallName,omitempty"`
	SelectedMallID      string    `firestore:"selectedMallId,omitempty"`
	SavedItems          []string  `firestore:"savedItems,omitempty"`
	InitialPasswordHash string    `firestore:"initialPasswordHash,omitempty"`
	MustChangePassword  bool      `firestore:"mustChangePassword,omitempty"`
	CreatedBy           string    `firestore:"createdBy,omitempty"`
	CreatedAt           time.Time `firestore:"createdAt"`
	UpdatedAt           time.Time `firestore:"updatedAt,omitempty"`
}

// ToProfileDomain maps the persistence model back to a domain entity.
func ToProfileDomain(uid string, m *ProfileModel) *entity.Profile {
	return &entity.Profile{
		UID:                 uid,
		Name:                m.Name,
		Email:               m.Email,
		Role:                entity.Role(m.Role),
		ContactNumber:       m.ContactNumber,
		MallID:              m.MallID,
		MallName:            m.MallName,
		SelectedMallID:      m.SelectedMallID,
		SavedItems:          m.SavedItems,
		InitialPasswordHash: m.InitialPasswordHash,
		MustChangePassword:  m.MustChangePassword,
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromProfileDomain maps a domain entity to its persistence model.
func FromProfileDomain(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		Name:                p.Name,
		Email:               p.Email,
		Role:                p.Role.String(),
		ContactNumber:       p.ContactNumber,
		MallID:              p.MallID,
		MallName:            p.MallName,
		SelectedMallID:      p.SelectedMallID,
		SavedItems:          p.SavedItems,
		InitialPasswordHash: p.InitialPasswordHash,
		MustChangePassword:  p.MustChangePassword,
		CreatedBy:           p.CreatedBy,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
