package models

type User struct {
	ID       string `bson:"id" json:"id"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"password"`
	Role     string `bson:"role" json:"role"`
	Username string `bson:"username" json:"username"`
	IsOnline bool   `bson:"isOnline" json:"isOnline"`
}

const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleCounter   = "counter"
)
