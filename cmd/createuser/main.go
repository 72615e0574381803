// Comando para criar usuários da API, usado principalmente para o primeiro
// superusuário:
//
//	go run ./cmd/createuser -username admin -superuser
//
// Sem -password uma senha aleatória é gerada e impressa.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/pkg/utils"
)

const generatedPasswordLength = 16

func main() {
	username := flag.String("username", "", "nome do usuário")
	password := flag.String("password", "", "senha (gerada automaticamente se vazia)")
	superuser := flag.Bool("superuser", false, "cria o usuário como superusuário")
	squadID := flag.Int64("squad", 0, "id do squad do usuário")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if cfg.Database.AutoMigrate {
		if err := conn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar schema do PostgreSQL")
		}
	}

	generated := *password == ""
	if generated {
		*password, err = utils.GeneratePassword(generatedPasswordLength)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar senha")
		}
	}

	request := &domain.CreateUserRequest{
		Username:    *username,
		Password:    *password,
		IsSuperuser: *superuser,
	}
	if *squadID > 0 {
		request.SquadID = squadID
	}

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)

	user, err := authenticator.CreateUser(ctx, request)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário")
	}

	fmt.Printf("Usuário %q criado (id=%d, superusuário=%t)\n", user.Username, user.ID, user.IsSuperuser)
	if generated {
		fmt.Printf("Senha gerada: %s\n", *password)
	}
}
