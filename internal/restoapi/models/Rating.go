package models

type Rating struct {
	ReservasiID int    `json:"reservasi_id"`
	Rating      int    `json:"rating"`
	Komentar    string `json:"komentar,omitempty"`
}

type RatingResponse struct {
	Message string  `json:"message"`
	Data    *Rating `json:"data"`
}

type RatingCheck struct {
	HasRated bool    `json:"has_rated"`
	Rating   *Rating `json:"rating"`
}
