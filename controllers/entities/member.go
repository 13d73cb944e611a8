package entities

type MemberLoginEntity struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AddressEntity struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
	Detail      string `json:"detail"`
	Base        bool   `json:"base"`
}
