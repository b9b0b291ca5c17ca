package domain

// Account is the caller-facing shape of an authentication identity. The
// credential hash never leaves the account store, so it is absent here.
type Account struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      Role
	Active    bool
	LastLogin string
	CreatedAt string
}

// FullName joins first and last name for display.
func (a *Account) FullName() string {
	if a.FirstName == "" && a.LastName == "" {
		return a.Username
	}
	name := a.FirstName
	if a.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.LastName
	}
	return name
}

// ToRecord serialises the account to a flat field mapping.
func (a *Account) ToRecord() Record {
	return Record{
		"id":         a.ID,
		"username":   a.Username,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"email":      a.Email,
		"role":       string(a.Role),
		"is_active":  a.Active,
		"last_login": a.LastLogin,
		"created_at": a.CreatedAt,
	}
}

// AccountFromRecord builds an account from a flat field mapping.
func AccountFromRecord(r Record) *Account {
	return &Account{
		ID:        recInt64(r, "id"),
		Username:  recString(r, "username"),
		FirstName: recString(r, "first_name"),
		LastName:  recString(r, "last_name"),
		Email:     recString(r, "email"),
		Role:      ParseRole(recString(r, "role")),
		Active:    recBool(r, "is_active"),
		LastLogin: recString(r, "last_login"),
		CreatedAt: recString(r, "created_at"),
	}
}
