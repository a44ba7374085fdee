package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"zoo-ops/internal/domain/animals"
)

// Animal mirrors the server's animal payload. Species keeps the tagged-union
// codec so both bare-id and populated responses decode.
type Animal struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Species     animals.SpeciesRef   `json:"species"`
	Category    animals.Category     `json:"category"`
	Age         int                  `json:"age"`
	Weight      float64              `json:"weight"`
	Sex         animals.Sex          `json:"sex"`
	Status      animals.HealthStatus `json:"status"`
	EnclosureID string               `json:"enclosureId,omitempty"`
	CaretakerID string               `json:"caretakerId,omitempty"`
	DoctorID    string               `json:"doctorId,omitempty"`
	ArrivalDate *time.Time           `json:"arrivalDate,omitempty"`
	DOB         *time.Time           `json:"dob,omitempty"`
	LastCheckup *time.Time           `json:"lastCheckup,omitempty"`
	Description string               `json:"description,omitempty"`
	ImageURL    string               `json:"imgUrl,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type AnimalFilter struct {
	Category    string
	Status      string
	EnclosureID string
	Search      string
}

func (c *Client) ListAnimals(ctx context.Context, f AnimalFilter) ([]Animal, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.EnclosureID != "" {
		q.Set("enclosureId", f.EnclosureID)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	path := "/api/animals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out struct {
		Animals []Animal `json:"animals"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, path, c.headers(), nil, &out); err != nil {
		return nil, apiError(err)
	}
	return out.Animals, nil
}

func (c *Client) GetAnimal(ctx context.Context, id string) (Animal, error) {
	var out struct {
		Animal Animal `json:"animal"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/animals/"+url.PathEscape(id), c.headers(), nil, &out); err != nil {
		return Animal{}, apiError(err)
	}
	return out.Animal, nil
}

// CreateAnimalInput is the write payload. Dates are YYYY-MM-DD or RFC3339.
type CreateAnimalInput struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Category    string `json:"category"`
	Age         int    `json:"age,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Sex         string `json:"sex,omitempty"`
	Status      string `json:"status,omitempty"`
	EnclosureID string `json:"enclosureId,omitempty"`
	CaretakerID string `json:"caretakerId,omitempty"`
	DoctorID    string `json:"doctorId,omitempty"`
	ArrivalDate string `json:"arrivalDate,omitempty"`
	DOB         string `json:"dob,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imgUrl,omitempty"`
}

func (c *Client) CreateAnimal(ctx context.Context, in CreateAnimalInput) (Animal, error) {
	var out struct {
		Animal Animal `json:"animal"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/animals", c.headers(), in, &out); err != nil {
		return Animal{}, apiError(err)
	}
	return out.Animal, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, id string) error {
	if err := c.http.DoJSON(ctx, http.MethodDelete, "/api/animals/"+url.PathEscape(id), c.headers(), nil, nil); err != nil {
		return apiError(err)
	}
	return nil
}
