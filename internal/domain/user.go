package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SuperuserSquadLabel é exibido no lugar do squad para superusuários
const SuperuserSquadLabel = "Super"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile liga um usuário a no máximo um squad
type Profile struct {
	UserID    int64
	SquadID   *int64
	SquadName *string
}

// Principal é o usuário autenticado que faz a requisição
type Principal struct {
	UserID      int64
	Username    string
	IsSuperuser bool
	SquadID     *int64
	SquadName   *string
}

func NewPrincipal(user *User, profile *Profile) *Principal {
	principal := &Principal{
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}
	if profile != nil {
		principal.SquadID = profile.SquadID
		principal.SquadName = profile.SquadName
	}
	return principal
}

// DisplaySquad resolve o nome de squad exibido para o usuário
func (p *Principal) DisplaySquad() *string {
	if p.IsSuperuser {
		label := SuperuserSquadLabel
		return &label
	}
	if p.SquadID == nil || p.SquadName == nil {
		return nil
	}
	name := *p.SquadName
	return &name
}

type UserProfileInfo struct {
	Squad *int64 `json:"squad"`
}

// UserInfo é a resposta de "quem sou eu"
type UserInfo struct {
	ID          int64           `json:"id"`
	Username    string          `json:"username"`
	IsSuperuser bool            `json:"is_superuser"`
	SquadName   *string         `json:"squad_name"`
	Profile     UserProfileInfo `json:"profile"`
}

func (p *Principal) Info() *UserInfo {
	return &UserInfo{
		ID:          p.UserID,
		Username:    p.Username,
		IsSuperuser: p.IsSuperuser,
		SquadName:   p.DisplaySquad(),
		Profile:     UserProfileInfo{Squad: p.SquadID},
	}
}

type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateUserRequest é usado pelo comando de criação de usuários
type CreateUserRequest struct {
	Username    string
	Password    string
	IsSuperuser bool
	SquadID     *int64
}

// LoginRequest é o corpo de POST /api/auth/login/
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse segue o formato esperado pelo frontend
type LoginResponse struct {
	Access string `json:"access"`
}
