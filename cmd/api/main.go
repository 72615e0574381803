package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/zebee/manager-api/infrastructure/database/postgres"
	"github.com/zebee/manager-api/infrastructure/repository"
	"github.com/zebee/manager-api/internal/api"
	"github.com/zebee/manager-api/internal/api/handler"
	"github.com/zebee/manager-api/internal/config"
	"github.com/zebee/manager-api/internal/scheduler"
	"github.com/zebee/manager-api/internal/usecases/authenticating"
	"github.com/zebee/manager-api/internal/usecases/client"
	"github.com/zebee/manager-api/internal/usecases/performance"
	"github.com/zebee/manager-api/internal/usecases/squad"
	"github.com/zebee/manager-api/pkg/log"
	"github.com/zebee/manager-api/pkg/validation"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure(logrus.InfoLevel.String())
	}
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	squadRepo := repository.NewSquadRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	revenueRepo := repository.NewRevenueHistoryRepository(pgConn)
	performanceRepo := repository.NewSquadPerformanceRepository(pgConn)

	validate := validation.New()

	authenticator := authenticating.NewService(userRepo, cfg)
	squadService := squad.NewService(squadRepo, validate)
	clientService := client.NewService(clientRepo, validate)
	performanceService := performance.NewService(revenueRepo, performanceRepo, clientRepo, validate)

	activeClientsSyncService := scheduler.NewActiveClientsSyncService(squadRepo, cfg)
	monthlyRollupService := scheduler.NewMonthlyRollupService(performanceService, cfg)

	if err := activeClientsSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de clientes ativos")
	} else {
		log.L.Info("Agendador de reconciliação de clientes ativos iniciado com sucesso")
	}

	if err := monthlyRollupService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de consolidação mensal")
	} else {
		log.L.Info("Agendador de consolidação mensal iniciado com sucesso")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Squads:        squadService,
		Clients:       clientService,
		Performance:   performanceService,
		CronJobs: handler.CronJobServices{
			ActiveClientsSyncService: activeClientsSyncService,
			MonthlyRollupService:     monthlyRollupService,
		},
		Database: pgConn,
	}, registry)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados e aplica o schema quando configurado
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if dbConfig.AutoMigrate {
		if err := conn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar schema do PostgreSQL")
		}
		log.L.Info("Schema do PostgreSQL aplicado")
	}

	return conn
}
