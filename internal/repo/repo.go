package repo

import (
	"github.com/traffpanel/traffpanel/internal/pg"
	depositrepo "github.com/traffpanel/traffpanel/internal/repo/deposit-repo"
	orderrepo "github.com/traffpanel/traffpanel/internal/repo/order-repo"
	userrepo "github.com/traffpanel/traffpanel/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	DepositRepo *depositrepo.Repository
	OrderRepo   *orderrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		DepositRepo: depositrepo.New(conn),
		OrderRepo:   orderrepo.New(conn),
	}
}
