package handler

import (
	"time"

	"supermall/internal/domain/entity"
)

// ProfilePayload is the wire shape of a profile. Password material never
// leaves the server, so the hash fields have no counterpart here.
type ProfilePayload struct {
	UID                string    `json:"uid"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	ContactNumber      string    `json:"contact_number,omitempty"`
	MallID             string    `json:"mall_id,omitempty"`
	MallName           string    `json:"mall_name,omitempty"`
	SelectedMallID     string    `json:"selected_mall_id,omitempty"`
	SavedItems         []string  `json:"saved_items,omitempty"`
	MustChangePassword bool      `json:"must_change_password,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toProfilePayload(p *entity.Profile) *ProfilePayload {
	return &ProfilePayload{
		UID:                p.UID,
		Name:               p.Name,
		Email:              p.Email,
		Role:               p.Role.String(),
		ContactNumber:      p.ContactNumber,
		MallID:             p.MallID,
		MallName:           p.MallName,
		SelectedMallID:     p.SelectedMallID,
		SavedItems:         p.SavedItems,
		MustChangePassword: p.MustChangePassword,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toProfilePayloads(profiles []*entity.Profile) []*ProfilePayload {
	out := make([]*ProfilePayload, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfilePayload(p))
	}

	return out
}
