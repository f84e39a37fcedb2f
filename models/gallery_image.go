package models

type GalleryImage struct {
	ID  string        `json:"id"`
	Src string        `json:"src"`
	Alt LocalizedText `json:"alt"`
}
