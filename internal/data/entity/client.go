package entity

type Client struct {
	Base
	FullName    string  `db:"full_name"`
	Phone       string  `db:"phone"`
	Email       *string `db:"email"`
	Address     *string `db:"address"`
	SocialMedia *string `db:"social_media"`
	Notes       *string `db:"notes"`
}
