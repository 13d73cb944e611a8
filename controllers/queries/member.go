package queries

type MemberJoinPayload struct {
	Email    string `json:"email" form:"email" validate:"required|email"`
	Password string `json:"password" form:"password" validate:"required|minLen:8"`
}

func (p MemberJoinPayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.join.missing_{field}",
		"email":    "member.join.invalid_email",
		"minLen":   "member.join.weak_password",
	}
}

type MemberLoginPayload struct {
	Email    string `json:"email" form:"email" validate:"required|email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (p MemberLoginPayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.login.missing_{field}",
		"email":    "member.login.invalid_email",
	}
}

type ReissuePayload struct {
	AccessToken  string `json:"access_token" form:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
}

func (p ReissuePayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.reissue.missing_{field}",
	}
}

type EmailAuthPayload struct {
	Email string `json:"email" form:"email" validate:"required|email"`
}

func (p EmailAuthPayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.email.missing_{field}",
		"email":    "member.email.invalid_email",
	}
}

type EmailAuthCheckPayload struct {
	Email string `json:"email" form:"email" validate:"required|email"`
	Code  string `json:"code" form:"code" validate:"required"`
}

func (p EmailAuthCheckPayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.email.missing_{field}",
		"email":    "member.email.invalid_email",
	}
}

type AddressPayload struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Phone       string `json:"phone" form:"phone" validate:"required"`
	AddressLine string `json:"address_line" form:"address_line" validate:"required"`
	Detail      string `json:"detail" form:"detail"`
}

func (p AddressPayload) Messages() map[string]string {
	return map[string]string{
		"required": "member.address.missing_{field}",
	}
}
