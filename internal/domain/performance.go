package domain

// RevenueHistory consolida receita e movimentação de clientes de um mês
type RevenueHistory struct {
	ID         int64  `json:"id"`
	Month      Period `json:"month"`
	Revenue    Amount `json:"revenue"`
	Commission Amount `json:"commission"`
	NewClients int    `json:"new_clients"`
	Churns     int    `json:"churns"`
}

type RevenueHistoryRequest struct {
	Month      *Period `json:"month" validate:"required,period"`
	Revenue    *Amount `json:"revenue" validate:"required,amount=10"`
	Commission *Amount `json:"commission" validate:"required,amount=10"`
	NewClients *int    `json:"new_clients" validate:"required,min=0"`
	Churns     *int    `json:"churns" validate:"required,min=0"`
}

func (r RevenueHistoryRequest) ToRevenueHistory() *RevenueHistory {
	return &RevenueHistory{
		Month:      *r.Month,
		Revenue:    *r.Revenue,
		Commission: *r.Commission,
		NewClients: *r.NewClients,
		Churns:     *r.Churns,
	}
}

// SquadPerformance é a receita de um squad em um mês. Existe no máximo
// um registro por squad e mês.
type SquadPerformance struct {
	ID        int64  `json:"id"`
	SquadID   int64  `json:"-"`
	SquadName string `json:"squad"`
	Month     Period `json:"month"`
	Revenue   Amount `json:"revenue"`
}

type SquadPerformanceRequest struct {
	Squad   *int64  `json:"squad" validate:"required,min=1"`
	Month   *Period `json:"month" validate:"required,period"`
	Revenue *Amount `json:"revenue" validate:"required,amount=10"`
}

func (r SquadPerformanceRequest) ToSquadPerformance() *SquadPerformance {
	return &SquadPerformance{
		SquadID: *r.Squad,
		Month:   *r.Month,
		Revenue: *r.Revenue,
	}
}
