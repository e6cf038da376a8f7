// Comando script aplica as migrações e popula o banco com uma hierarquia de
// demonstração (tiers, clientes, projetos, impostos e registros do ano corrente).
// Não faz nada se já existirem tiers cadastrados.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/hangar-api/infrastructure/cache"
	"github.com/vfg2006/hangar-api/infrastructure/database/postgres"
	"github.com/vfg2006/hangar-api/infrastructure/migration"
	"github.com/vfg2006/hangar-api/infrastructure/repository"
	"github.com/vfg2006/hangar-api/internal/config"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/cadastro"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/vfg2006/hangar-api/pkg/utils"
)

var seedAdmin = domain.Principal{UserID: "seed", Role: domain.RoleAdmin}

type seedProjeto struct {
	nome       string
	percentual float64
	receita    float64
	custo      float64
}

type seedCliente struct {
	nome     string
	meta     *float64
	projetos []seedProjeto
}

type seedTier struct {
	nome     string
	meta     float64
	clientes []seedCliente
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

var demo = []seedTier{
	{
		nome: "Ouro",
		meta: 35,
		clientes: []seedCliente{
			{nome: "Aurora Linhas Aéreas", meta: floatPtr(40), projetos: []seedProjeto{
				{nome: "Portal de Reservas", percentual: 14.25, receita: 120000, custo: 70000},
				{nome: "App de Check-in", percentual: 14.25, receita: 80000, custo: 52000},
			}},
			{nome: "Boreal Logística", projetos: []seedProjeto{
				{nome: "Rastreamento de Frota", percentual: 11.33, receita: 95000, custo: 61000},
			}},
		},
	},
	{
		nome: "Prata",
		meta: 25,
		clientes: []seedCliente{
			{nome: "Cirrus Manutenção", projetos: []seedProjeto{
				{nome: "Controle de Hangar", percentual: 9.5, receita: 40000, custo: 31000},
			}},
		},
	},
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		log.L.Warn(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("seed: erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Run(conn.DB); err != nil {
		log.L.WithError(err).Fatal("seed: erro ao aplicar migrações")
	}

	// Sem Redis: o cache fica desligado e Bump não faz nada
	service := cadastro.NewService(cadastro.Repositories{
		Tiers:     repository.NewTierRepository(conn),
		Clientes:  repository.NewClienteRepository(conn),
		Projetos:  repository.NewProjetoRepository(conn),
		Impostos:  repository.NewImpostoRepository(conn),
		Registros: repository.NewRegistroRepository(conn),
	}, cache.New(nil, 0, nil))

	existing, err := service.ListTiers(ctx, seedAdmin)
	if err != nil {
		log.L.WithError(err).Fatal("seed: erro ao consultar tiers")
	}
	if len(existing) > 0 {
		log.L.Infof("seed: banco já possui %d tiers, nada a fazer", len(existing))
		return
	}

	startTime := time.Now()
	summary, err := seed(ctx, service, time.Now().UTC())
	if err != nil {
		log.L.WithError(err).Fatal("seed: erro ao popular banco")
	}

	log.L.Infof("seed: concluído em %v\n%s", time.Since(startTime), utils.PrettyJson(summary))
}

func seed(ctx context.Context, service *cadastro.Service, now time.Time) (map[string]int, error) {
	summary := map[string]int{}
	inicio := fmt.Sprintf("%d-01-01", now.Year())

	for _, t := range demo {
		tier, err := service.CreateTier(ctx, seedAdmin, domain.TierInput{Nome: strPtr(t.nome), MarginMeta: floatPtr(t.meta)})
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", t.nome, err)
		}
		summary["tiers"]++

		for _, c := range t.clientes {
			cliente, err := service.CreateCliente(ctx, seedAdmin, domain.ClienteInput{TierID: &tier.ID, Nome: strPtr(c.nome), MarginMeta: c.meta})
			if err != nil {
				return nil, fmt.Errorf("cliente %s: %w", c.nome, err)
			}
			summary["clientes"]++

			for _, p := range c.projetos {
				projeto, err := service.CreateProjeto(ctx, seedAdmin, domain.ProjetoInput{ClienteID: &cliente.ID, Nome: strPtr(p.nome)})
				if err != nil {
					return nil, fmt.Errorf("projeto %s: %w", p.nome, err)
				}
				summary["projetos"]++

				imposto, err := service.CreateImposto(ctx, seedAdmin, domain.ImpostoInput{
					ProjetoID:      &projeto.ID,
					Percentual:     floatPtr(p.percentual),
					VigenciaInicio: strPtr(inicio),
				})
				if err != nil {
					return nil, fmt.Errorf("imposto do projeto %s: %w", p.nome, err)
				}
				summary["impostos"]++

				n, err := seedRegistros(ctx, service, projeto.ID, imposto.ID, p, now)
				if err != nil {
					return nil, fmt.Errorf("registros do projeto %s: %w", p.nome, err)
				}
				summary["registros"] += n
			}
		}
	}

	return summary, nil
}

// seedRegistros lança o planejado dos 12 meses e o realizado dos meses já fechados,
// com uma variação simples para o realizado não coincidir com o planejado.
func seedRegistros(ctx context.Context, service *cadastro.Service, projetoID, impostoID string, p seedProjeto, now time.Time) (int, error) {
	count := 0
	for month := time.January; month <= time.December; month++ {
		mes := utils.MonthLabel(now.Year(), month)

		statuses := []domain.RegistroStatus{domain.RegistroPlanejado}
		if month < now.Month() {
			statuses = append(statuses, domain.RegistroRealizado)
		}

		for _, status := range statuses {
			fator := 1.0
			if status == domain.RegistroRealizado {
				fator = 0.9 + float64(month%4)*0.05
			}

			_, err := service.CreateRegistro(ctx, seedAdmin, domain.RegistroInput{
				ProjetoID:      &projetoID,
				MesRef:         &mes,
				ReceitaBruta:   floatPtr(utils.RoundWithTwoDecimalPlace(p.receita * fator)),
				ImpostoID:      &impostoID,
				CustoProjetado: floatPtr(p.custo),
				Status:         &status,
			})
			if err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
