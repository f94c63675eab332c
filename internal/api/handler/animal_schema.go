package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// searchAnimalRequest is the POST /v0/animal/search body. Query may be
// omitted: an empty query lists everything visible.
type searchAnimalRequest struct {
	Query string `json:"query"`
}

type animalResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price,omitempty"`
	AcquisitionDate string    `json:"acquisition_date,omitempty"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Likes           int64     `json:"likes"`
	CreatedAt       time.Time `json:"created_at"`
}

type searchAnimalResponse struct {
	Hits    int              `json:"hits"`
	Animals []animalResponse `json:"animals"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type createAnimalRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Description     string  `json:"description"      validate:"required"`
	PhotoURL        string  `json:"photo_url"        validate:"required"`
	Price           float64 `json:"price,omitempty"            validate:"omitempty,gte=0"`
	AcquisitionDate string  `json:"acquisition_date,omitempty"`
}

type likeRequest struct {
	AnimalID string `json:"animal_id" validate:"required"`
}

type likeResponse struct {
	AnimalID string `json:"animal_id"`
}

type registerRequest struct {
	HandleName   string `json:"handle_name"   validate:"required"`
	EmailAddress string `json:"email_address" validate:"omitempty,email"`
	Password     string `json:"password"      validate:"required,min=6"`
}

type loginRequest struct {
	HandleName string `json:"handle_name" validate:"required"`
	Password   string `json:"password"    validate:"required"`
}

type userResponse struct {
	ID         string `json:"id"`
	HandleName string `json:"handle_name"`
}

type loginResponse struct {
	UserID     string `json:"user_id"`
	HandleName string `json:"handle_name"`
	Token      string `json:"token"`
}
