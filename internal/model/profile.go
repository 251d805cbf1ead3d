package model

// Profile record of the signed-in admin ; keyed implicitly to the current token.
// Field names match the remote multipart/JSON contract.
type Profile struct {
	UserName      string `json:"userName,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Bio           string `json:"bio,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	MaritalDate   string `json:"maritalDate,omitempty"`
	Theme         string `json:"theme,omitempty"`
	Language      string `json:"language,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	AvatarURL     string `json:"profileAvatar,omitempty"`
}

// Fields returns the defined, non-empty attributes as multipart form values.
// The avatar file is NOT included here ; it travels as the "file" part.
func (e *Profile) Fields() map[string]string {
	if e == nil {
		return nil
	}
	form := make(map[string]string, 11)
	put := func(key, vs string) {
		if vs != "" {
			form[key] = vs
		}
	}
	put("userName", e.UserName)
	put("displayName", e.DisplayName)
	put("bio", e.Bio)
	put("phoneNumber", e.PhoneNumber)
	put("gender", e.Gender)
	put("dateOfBirth", e.DateOfBirth)
	put("maritalStatus", e.MaritalStatus)
	put("maritalDate", e.MaritalDate)
	put("theme", e.Theme)
	put("language", e.Language)
	put("timezone", e.Timezone)
	return form
}
