package entities

type BrandEntity struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
