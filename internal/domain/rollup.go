package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MonthlySummary é a consolidação de um mês calculada a partir dos clientes
type MonthlySummary struct {
	Revenue RevenueHistory
	Squads  []SquadPerformance
}

// activeAtEndOf indica se o cliente estava ativo no último instante do mês
func activeAtEndOf(c *Client, month Period) bool {
	end := month.Next().Time
	if !c.CreatedAt.Before(end) {
		return false
	}
	if c.IsActive() {
		return true
	}
	return c.StatusChangedAt != nil && !c.StatusChangedAt.Before(end)
}

// SummarizeMonth consolida receita, comissão, novos clientes e churns do mês
func SummarizeMonth(month Period, clients []*Client) MonthlySummary {
	revenue := decimal.Zero
	commission := decimal.Zero
	bySquad := make(map[int64]decimal.Decimal)
	newClients, churns := 0, 0

	for _, c := range clients {
		if month.Contains(c.CreatedAt) {
			newClients++
		}
		if c.Status == ClientStatusInactive && c.StatusChangedAt != nil && month.Contains(*c.StatusChangedAt) {
			churns++
		}
		if !activeAtEndOf(c, month) {
			continue
		}

		revenue = revenue.Add(c.PlanValue.Decimal)
		commission = commission.Add(c.PlanValue.Decimal.Mul(c.CommissionPercentage.Decimal).Div(hundred))
		if c.SquadID != nil {
			bySquad[*c.SquadID] = bySquad[*c.SquadID].Add(c.PlanValue.Decimal)
		}
	}

	squadIDs := make([]int64, 0, len(bySquad))
	for id := range bySquad {
		squadIDs = append(squadIDs, id)
	}
	sort.Slice(squadIDs, func(i, j int) bool { return squadIDs[i] < squadIDs[j] })

	performances := make([]SquadPerformance, 0, len(squadIDs))
	for _, id := range squadIDs {
		performances = append(performances, SquadPerformance{
			SquadID: id,
			Month:   month,
			Revenue: AmountFromDecimal(bySquad[id].Round(2)),
		})
	}

	return MonthlySummary{
		Revenue: RevenueHistory{
			Month:      month,
			Revenue:    AmountFromDecimal(revenue.Round(2)),
			Commission: AmountFromDecimal(commission.Round(2)),
			NewClients: newClients,
			Churns:     churns,
		},
		Squads: performances,
	}
}

// PreviousMonth retorna o período do mês anterior à data informada
func PreviousMonth(now time.Time) Period {
	return NewPeriod(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0))
}
