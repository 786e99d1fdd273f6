package validation

const (
	minFieldLength = 3
	maxFieldLength = 20
)

// UserCreateInput carries the raw registration fields before validation.
type UserCreateInput struct {
	Username        string
	Email           string
	FullName        string
	Description     string
	Password        string
	ConfirmPassword string
}

// UserCreate is a validated registration payload. The password stays a plain
// validated string; hashing happens in the persistence path.
type UserCreate struct {
	Username        string
	Email           string
	FullName        string
	Description     *string
	Password        string
	ConfirmPassword string
}

func userCreateFieldRules() []fieldRule {
	length := lengthBetween(minFieldLength, maxFieldLength)
	return []fieldRule{
		{field: "username", rules: []Rule{notEmpty, length}},
		{field: "full_name", rules: []Rule{notEmpty}},
		{field: "password", rules: []Rule{notEmpty, length}},
		{field: "confirm_password", rules: []Rule{notEmpty}},
		{field: "email", rules: []Rule{notEmpty, validEmail}},
	}
}

func userCreateCrossRules() []crossRule {
	return []crossRule{
		{
			field: "confirm_password",
			deps:  []string{"password"},
			check: func(value string, validated map[string]string) *FieldError {
				if value != validated["password"] {
					return &FieldError{Kind: KindPasswordMismatch, Message: "doesn't match to password"}
				}
				return nil
			},
		},
	}
}

// ValidateUserCreate checks a raw registration payload and returns the
// normalized entity, or a report listing every failing field.
func ValidateUserCreate(in UserCreateInput) (*UserCreate, *Report) {
	raw := map[string]string{
		"username":         in.Username,
		"full_name":        in.FullName,
		"password":         in.Password,
		"confirm_password": in.ConfirmPassword,
		"email":            in.Email,
	}

	validated, report := runRules(raw, userCreateFieldRules(), userCreateCrossRules())
	if !report.Empty() {
		return nil, report
	}

	user := &UserCreate{
		Username:        validated["username"],
		Email:           validated["email"],
		FullName:        validated["full_name"],
		Password:        validated["password"],
		ConfirmPassword: validated["confirm_password"],
	}
	if in.Description != "" {
		description := in.Description
		user.Description = &description
	}

	return user, report
}
