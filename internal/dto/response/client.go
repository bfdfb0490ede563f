package response

import (
	"time"

	"promoservice/internal/data/entity"
)

type ClientResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email,omitempty"`
	Address     *string   `json:"address,omitempty"`
	SocialMedia *string   `json:"social_media,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ClientToResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		FullName:    client.FullName,
		Phone:       client.Phone,
		Email:       client.Email,
		Address:     client.Address,
		SocialMedia: client.SocialMedia,
		Notes:       client.Notes,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}

func ClientsToResponse(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientToResponse(c))
	}
	return out
}
