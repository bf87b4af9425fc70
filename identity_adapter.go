package tokenauth

type userIdentity struct {
	user *User
}

var _ Identity = (*userIdentity)(nil)

// NewIdentityFromUser adapts a persisted User into the Identity view the
// authentication flow works with.
func NewIdentityFromUser(user *User) Identity {
	return &userIdentity{user: user}
}

func (i *userIdentity) ID() string {
	return i.user.ID.String()
}

func (i *userIdentity) Username() string {
	return i.user.Username
}

func (i *userIdentity) Email() string {
	return i.user.Email
}
